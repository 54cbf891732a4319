package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bazarna-store/api/internal/store"
)

var (
	// ErrCartStoreMissing indicates the state store dependency is absent.
	ErrCartStoreMissing = errors.New("cart service: state store is not configured")
	// ErrCartInvalidInput indicates the caller supplied invalid input.
	ErrCartInvalidInput = errors.New("cart service: invalid input")
)

// CartServiceDeps bundles constructor inputs for the cart service.
type CartServiceDeps struct {
	Store  *store.Store
	Logger func(ctx context.Context, event string, fields map[string]any)
}

type cartService struct {
	store  *store.Store
	logger func(ctx context.Context, event string, fields map[string]any)
}

// NewCartService constructs the cart service with the supplied dependencies.
func NewCartService(deps CartServiceDeps) (CartService, error) {
	if deps.Store == nil {
		return nil, ErrCartStoreMissing
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &cartService{store: deps.Store, logger: logger}, nil
}

func (s *cartService) View(_ context.Context) CartView {
	return s.view()
}

func (s *cartService) Add(ctx context.Context, cmd AddToCartCommand) (CartView, error) {
	product := cmd.Product
	product.ID = strings.TrimSpace(product.ID)
	if product.ID == "" {
		return CartView{}, fmt.Errorf("%w: product id is required", ErrCartInvalidInput)
	}

	// When the product is known to the catalog, trust the catalog entry over
	// whatever the caller posted so stale prices never enter the cart.
	if known, ok := s.store.Product(product.ID); ok {
		product = known
	}

	s.store.AddToCart(product)
	s.logger(ctx, "cart.line_added", map[string]any{"productID": product.ID})
	return s.view(), nil
}

// UpdateQuantity sets the quantity on the matching line. Quantities below 1
// and unknown ids are silently ignored; removal is only ever explicit via
// Remove.
func (s *cartService) UpdateQuantity(ctx context.Context, productID string, quantity int) (CartView, error) {
	id := strings.TrimSpace(productID)
	if id == "" {
		return CartView{}, fmt.Errorf("%w: product id is required", ErrCartInvalidInput)
	}

	s.store.UpdateQuantity(id, quantity)
	s.logger(ctx, "cart.quantity_updated", map[string]any{
		"productID": id,
		"quantity":  quantity,
	})
	return s.view(), nil
}

func (s *cartService) Remove(ctx context.Context, productID string) CartView {
	id := strings.TrimSpace(productID)
	if id != "" {
		s.store.RemoveFromCart(id)
		s.logger(ctx, "cart.line_removed", map[string]any{"productID": id})
	}
	return s.view()
}

func (s *cartService) Clear(ctx context.Context) CartView {
	s.store.ClearCart()
	s.logger(ctx, "cart.cleared", nil)
	return s.view()
}

func (s *cartService) view() CartView {
	return CartView{
		Lines: s.store.Cart(),
		Total: s.store.TotalPrice(),
	}
}
