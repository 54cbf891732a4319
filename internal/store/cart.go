package store

import "github.com/bazarna-store/api/internal/domain"

// Cart returns a copy of the cart lines in insertion order.
func (s *Store) Cart() []domain.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneLines(s.cart)
}

// TotalPrice sums price times quantity over all cart lines.
func (s *Store) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total float64
	for _, line := range s.cart {
		total += line.Subtotal()
	}
	return total
}

// AddToCart increments the quantity of the existing line for the product,
// or appends a new line with quantity 1. The cart never grows by more than
// one line per call.
func (s *Store) AddToCart(p domain.Product) {
	s.mu.Lock()
	merged := false
	for i := range s.cart {
		if s.cart[i].ID == p.ID {
			s.cart[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		s.cart = append(s.cart, domain.CartLine{Product: p, Quantity: 1})
	}
	s.mu.Unlock()
	s.notify(SliceCart)
}

// RemoveFromCart deletes the line with the given product id. No-op if
// absent.
func (s *Store) RemoveFromCart(id string) {
	s.mu.Lock()
	removed := false
	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()
	if removed {
		s.notify(SliceCart)
	}
}

// UpdateQuantity sets the quantity on the matching line. Quantities below 1
// are ignored rather than removing the line; use RemoveFromCart for
// removal. No-op when the id is absent.
func (s *Store) UpdateQuantity(id string, quantity int) {
	if quantity < 1 {
		return
	}
	s.mu.Lock()
	updated := false
	for i := range s.cart {
		if s.cart[i].ID == id {
			s.cart[i].Quantity = quantity
			updated = true
			break
		}
	}
	s.mu.Unlock()
	if updated {
		s.notify(SliceCart)
	}
}

// ClearCart empties the cart.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()
	s.notify(SliceCart)
}

// RestoreCart replaces the cart without emitting a change notification.
// Used by the persistence adapter during hydration.
func (s *Store) RestoreCart(lines []domain.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = cloneLines(lines)
}

func cloneLines(lines []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	return out
}
