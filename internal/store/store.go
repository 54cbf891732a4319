// Package store holds the storefront state container: catalog, cart,
// session, and UI preferences, together with the derived views over them.
// The container performs no I/O of its own; persistence is layered on top
// through slice-change subscriptions.
package store

import (
	"strings"
	"sync"

	"github.com/bazarna-store/api/internal/domain"
	"github.com/bazarna-store/api/internal/platform/textutil"
)

// Slice identifies one of the persisted state slices in change notifications.
type Slice string

const (
	// SliceCatalog covers product additions, edits, and deletions.
	SliceCatalog Slice = "catalog"
	// SliceCart covers any change to cart lines.
	SliceCart Slice = "cart"
	// SliceSession covers login and logout.
	SliceSession Slice = "session"
)

// Listener receives a notification after a slice has been mutated. Listeners
// run synchronously on the mutating goroutine and must not mutate the store.
type Listener func(Slice)

// Store is the single owner and single mutator of the four state slices.
// It is constructed once at the composition root and injected everywhere a
// reader or mutator needs it.
type Store struct {
	mu        sync.RWMutex
	catalog   []domain.Product
	cart      []domain.CartLine
	session   *domain.Session
	language  domain.Language
	query     string
	listeners []Listener
}

// New constructs an empty store with the default locale. The catalog stays
// empty until a persistence adapter hydrates it or products are added.
func New() *Store {
	return &Store{language: domain.LanguageArabic}
}

// Subscribe registers a slice-change listener. Subscription is expected to
// happen during startup, before the store is shared across goroutines.
func (s *Store) Subscribe(fn Listener) {
	if fn == nil {
		return
	}
	s.listeners = append(s.listeners, fn)
}

func (s *Store) notify(slices ...Slice) {
	for _, slice := range slices {
		for _, fn := range s.listeners {
			fn(slice)
		}
	}
}

// SetSearchQuery replaces the live search query. Any string is accepted.
func (s *Store) SetSearchQuery(q string) {
	s.mu.Lock()
	s.query = q
	s.mu.Unlock()
}

// SearchQuery returns the live search query.
func (s *Store) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// ToggleLanguage flips between the two locales and returns the new value.
// Applying it twice restores the original locale.
func (s *Store) ToggleLanguage() domain.Language {
	s.mu.Lock()
	s.language = s.language.Toggle()
	lang := s.language
	s.mu.Unlock()
	return lang
}

// RestoreLanguage replaces the active language without emitting a change
// notification. Used at startup to apply the configured default; an invalid
// value is ignored.
func (s *Store) RestoreLanguage(lang domain.Language) {
	if !lang.Valid() {
		return
	}
	s.mu.Lock()
	s.language = lang
	s.mu.Unlock()
}

// Language returns the active display language.
func (s *Store) Language() domain.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// FilteredProducts returns the catalog filtered by the live search query.
// An empty query returns the full catalog in catalog order. Otherwise a
// product is included when the folded query is a substring of its English
// name or description, or the Arabic-normalized query is a substring of its
// normalized Arabic name or description. Plain substring matching, catalog
// order preserved.
func (s *Store) FilteredProducts() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := strings.TrimSpace(s.query)
	if query == "" {
		return cloneProducts(s.catalog)
	}

	folded := textutil.Fold(query)
	normalized := textutil.NormalizeArabic(query)

	var out []domain.Product
	for _, p := range s.catalog {
		switch {
		case strings.Contains(textutil.NormalizeArabic(p.NameAr), normalized),
			strings.Contains(textutil.Fold(p.NameEn), folded),
			strings.Contains(textutil.NormalizeArabic(p.DescriptionAr), normalized),
			strings.Contains(textutil.Fold(p.DescriptionEn), folded):
			out = append(out, p)
		}
	}
	return out
}

func cloneProducts(products []domain.Product) []domain.Product {
	out := make([]domain.Product, len(products))
	copy(out, products)
	return out
}
