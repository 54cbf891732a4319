package services

import (
	"context"

	domain "github.com/bazarna-store/api/internal/domain"
)

// Type aliases expose domain models to the services package without reversing dependency direction.
type (
	Product      = domain.Product
	CartLine     = domain.CartLine
	Session      = domain.Session
	Language     = domain.Language
	Category     = domain.Category
	OrderDetails = domain.OrderDetails
)

// CatalogService exposes catalog browsing and the administrative mutations.
type CatalogService interface {
	List(ctx context.Context) []Product
	Search(ctx context.Context, query string) []Product
	Create(ctx context.Context, cmd CreateProductCommand) (Product, error)
	Update(ctx context.Context, cmd UpdateProductCommand) (Product, error)
	Delete(ctx context.Context, productID string) error
}

// CreateProductCommand carries the fields of a new catalog entry. An empty
// ID is assigned by the service; uniqueness of caller-supplied ids is the
// caller's responsibility.
type CreateProductCommand struct {
	Product Product
}

// UpdateProductCommand replaces the catalog entry matching Product.ID.
type UpdateProductCommand struct {
	Product Product
}

// CartService exposes the shopping cart operations.
type CartService interface {
	View(ctx context.Context) CartView
	Add(ctx context.Context, cmd AddToCartCommand) (CartView, error)
	UpdateQuantity(ctx context.Context, productID string, quantity int) (CartView, error)
	Remove(ctx context.Context, productID string) CartView
	Clear(ctx context.Context) CartView
}

// AddToCartCommand adds one unit of the product to the cart.
type AddToCartCommand struct {
	Product Product
}

// CartView is the cart read model: lines in insertion order plus the
// derived grand total.
type CartView struct {
	Lines []CartLine
	Total float64
}

// SessionService manages the simulated authenticated identity.
type SessionService interface {
	Current(ctx context.Context) (Session, bool)
	Login(ctx context.Context, cmd LoginCommand) (Session, error)
	Logout(ctx context.Context)
}

// LoginCommand carries the login inputs. PhotoURL is optional; when empty a
// deterministic placeholder avatar is derived from Name.
type LoginCommand struct {
	Email    string
	Name     string
	PhotoURL string
}

// PreferencesService manages the active display language.
type PreferencesService interface {
	Language(ctx context.Context) LanguageView
	ToggleLanguage(ctx context.Context) LanguageView
}

// LanguageView pairs the locale with its document text direction so the
// rendering layer can set lang and dir in one read.
type LanguageView struct {
	Language  Language
	Direction string
}

// CheckoutService turns the cart into an outbound order message.
type CheckoutService interface {
	BuildOrder(ctx context.Context, cmd BuildOrderCommand) (Order, error)
}

// BuildOrderCommand carries the customer details collected at checkout.
type BuildOrderCommand struct {
	Details OrderDetails
}

// Order is the assembled checkout result: the plain-text summary, the
// pre-filled messaging link for the customer, and the grand total.
type Order struct {
	Message     string
	WhatsAppURL string
	Total       float64
}
