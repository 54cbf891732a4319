package store

import "github.com/bazarna-store/api/internal/domain"

// Catalog returns a copy of the full catalog in catalog order.
func (s *Store) Catalog() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProducts(s.catalog)
}

// Product looks up a catalog entry by id.
func (s *Store) Product(id string) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.catalog {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// AddProduct prepends the product to the catalog. Id uniqueness is the
// caller's responsibility; no check is enforced here.
func (s *Store) AddProduct(p domain.Product) {
	s.mu.Lock()
	s.catalog = append([]domain.Product{p}, s.catalog...)
	s.mu.Unlock()
	s.notify(SliceCatalog)
}

// UpdateProduct replaces the catalog entry matching p's id. A non-matching
// id produces no visible change.
func (s *Store) UpdateProduct(p domain.Product) {
	s.mu.Lock()
	replaced := false
	for i := range s.catalog {
		if s.catalog[i].ID == p.ID {
			s.catalog[i] = p
			replaced = true
			break
		}
	}
	s.mu.Unlock()
	if replaced {
		s.notify(SliceCatalog)
	}
}

// DeleteProduct removes the matching catalog entry. No-op if absent.
func (s *Store) DeleteProduct(id string) {
	s.mu.Lock()
	removed := false
	for i := range s.catalog {
		if s.catalog[i].ID == id {
			s.catalog = append(s.catalog[:i], s.catalog[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()
	if removed {
		s.notify(SliceCatalog)
	}
}

// RestoreCatalog replaces the catalog without emitting a change
// notification. Used by the persistence adapter during hydration.
func (s *Store) RestoreCatalog(products []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = cloneProducts(products)
}
