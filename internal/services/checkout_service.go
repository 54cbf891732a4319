package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/bazarna-store/api/internal/domain"
	"github.com/bazarna-store/api/internal/store"
)

const defaultWhatsAppNumber = "201124162523"

var (
	// ErrCheckoutStoreMissing indicates the state store dependency is absent.
	ErrCheckoutStoreMissing = errors.New("checkout service: state store is not configured")
	// ErrCheckoutLoginRequired indicates checkout was attempted without a session.
	ErrCheckoutLoginRequired = errors.New("checkout service: login required")
	// ErrCheckoutEmptyCart indicates checkout was attempted with an empty cart.
	ErrCheckoutEmptyCart = errors.New("checkout service: cart is empty")
	// ErrCheckoutInvalidInput indicates the caller supplied invalid order details.
	ErrCheckoutInvalidInput = errors.New("checkout service: invalid input")
)

// CheckoutServiceDeps bundles constructor inputs for the checkout service.
type CheckoutServiceDeps struct {
	Store *store.Store
	// WhatsAppNumber is the merchant number in international format without
	// the leading plus. Empty selects the default storefront number.
	WhatsAppNumber string
	Logger         func(ctx context.Context, event string, fields map[string]any)
}

type checkoutService struct {
	store          *store.Store
	whatsAppNumber string
	logger         func(ctx context.Context, event string, fields map[string]any)
}

// NewCheckoutService constructs the checkout service with the supplied dependencies.
func NewCheckoutService(deps CheckoutServiceDeps) (CheckoutService, error) {
	if deps.Store == nil {
		return nil, ErrCheckoutStoreMissing
	}
	number := strings.TrimSpace(deps.WhatsAppNumber)
	if number == "" {
		number = defaultWhatsAppNumber
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &checkoutService{
		store:          deps.Store,
		whatsAppNumber: number,
		logger:         logger,
	}, nil
}

// BuildOrder assembles the order message from the cart and the supplied
// customer details, then empties the cart. The message is the handoff to the
// merchant: once the link is built the in-store order is considered placed.
func (s *checkoutService) BuildOrder(ctx context.Context, cmd BuildOrderCommand) (Order, error) {
	session, ok := s.store.Session()
	if !ok {
		return Order{}, ErrCheckoutLoginRequired
	}

	lines := s.store.Cart()
	if len(lines) == 0 {
		return Order{}, ErrCheckoutEmptyCart
	}

	details, err := normalizeOrderDetails(cmd.Details, session)
	if err != nil {
		return Order{}, err
	}

	total := s.store.TotalPrice()
	message := composeOrderMessage(details, lines, total, s.store.Language())
	order := Order{
		Message:     message,
		WhatsAppURL: "https://wa.me/" + s.whatsAppNumber + "?text=" + url.QueryEscape(message),
		Total:       total,
	}

	s.store.ClearCart()
	s.logger(ctx, "checkout.order_built", map[string]any{
		"email": details.Email,
		"lines": len(lines),
		"total": total,
	})
	return order, nil
}

func normalizeOrderDetails(d domain.OrderDetails, session domain.Session) (domain.OrderDetails, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Address = strings.TrimSpace(d.Address)
	d.City = strings.TrimSpace(d.City)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Notes = strings.TrimSpace(d.Notes)

	if d.Email == "" {
		d.Email = session.Email
	}
	if d.Name == "" {
		return domain.OrderDetails{}, fmt.Errorf("%w: name is required", ErrCheckoutInvalidInput)
	}
	if d.Address == "" {
		return domain.OrderDetails{}, fmt.Errorf("%w: address is required", ErrCheckoutInvalidInput)
	}
	if d.City == "" {
		return domain.OrderDetails{}, fmt.Errorf("%w: city is required", ErrCheckoutInvalidInput)
	}
	if d.Phone == "" {
		return domain.OrderDetails{}, fmt.Errorf("%w: phone is required", ErrCheckoutInvalidInput)
	}
	return d, nil
}

// composeOrderMessage renders the plain-text order summary sent to the
// merchant. Product names follow the active display language.
func composeOrderMessage(d domain.OrderDetails, lines []domain.CartLine, total float64, lang domain.Language) string {
	const separator = "*-----------------------------*"

	var b strings.Builder
	b.WriteString("*طلب جديد من منصة بزارنا (Bazarna)* 🛒\n\n")
	b.WriteString("*بيانات العميل:*\n")
	b.WriteString("👤 الاسم: " + d.Name + "\n")
	b.WriteString("📧 البريد: " + d.Email + "\n")
	b.WriteString("📍 العنوان: " + d.Address + ", " + d.City + "\n")
	b.WriteString("📞 الهاتف: " + d.Phone + "\n")
	if d.Notes != "" {
		b.WriteString("📝 ملاحظات: " + d.Notes + "\n")
	}

	b.WriteString("\n*الطلب:*\n")
	for _, line := range lines {
		b.WriteString("▫️ " + line.Product.Name(lang) +
			" (x" + strconv.Itoa(line.Quantity) + ") - " +
			formatAmount(line.Subtotal()) + " EGP\n")
	}

	b.WriteString("\n" + separator + "\n")
	b.WriteString("💰 *الإجمالي: " + formatAmount(total) + " EGP*\n")
	b.WriteString(separator)
	b.WriteString("\n*حالة المستخدم:* تم تسجيل الدخول بواسطة Google ✅")
	return b.String()
}

// formatAmount renders a price without trailing zeros, so whole-pound
// amounts read as integers.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
