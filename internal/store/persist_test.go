package store

import (
	"context"
	"strings"
	"testing"

	"github.com/bazarna-store/api/internal/domain"
	"github.com/bazarna-store/api/internal/platform/kv"
)

func newBoundStore(t *testing.T, kvStore kv.Store) *Store {
	t.Helper()
	s := New()
	persister, err := NewPersister(PersisterDeps{KV: kvStore, Store: s})
	if err != nil {
		t.Fatalf("unexpected persister error: %v", err)
	}
	persister.Load(context.Background())
	persister.Bind()
	return s
}

func TestNewPersisterValidation(t *testing.T) {
	if _, err := NewPersister(PersisterDeps{Store: New()}); err == nil {
		t.Fatalf("expected error when kv store missing")
	}
	if _, err := NewPersister(PersisterDeps{KV: kv.NewMemoryStore()}); err == nil {
		t.Fatalf("expected error when state store missing")
	}
}

func TestLoadDefaults(t *testing.T) {
	kvStore := kv.NewMemoryStore()
	s := newBoundStore(t, kvStore)

	seed := domain.SeedCatalog()
	catalog := s.Catalog()
	if len(catalog) != len(seed) {
		t.Fatalf("expected seed catalog of %d products, got %d", len(seed), len(catalog))
	}
	if len(s.Cart()) != 0 {
		t.Fatalf("expected empty cart on first run")
	}
	if _, ok := s.Session(); ok {
		t.Fatalf("expected no session on first run")
	}

	// The seed is mirrored so the stored catalog matches the visible one.
	raw, err := kvStore.Get(context.Background(), productsKey)
	if err != nil {
		t.Fatalf("seed catalog was not mirrored: %v", err)
	}
	if !strings.Contains(raw, seed[0].ID) {
		t.Fatalf("mirrored catalog missing seed product: %s", raw)
	}
}

func TestRoundTripThroughFreshStore(t *testing.T) {
	kvStore := kv.NewMemoryStore()
	first := newBoundStore(t, kvStore)

	product := testProduct("p100", "منتج جديد", "New Product", 99.5)
	first.AddProduct(product)
	first.AddToCart(product)
	first.UpdateQuantity("p100", 3)
	first.Login("a@b.com", "Jane", "")

	second := newBoundStore(t, kvStore)

	if got, want := len(second.Catalog()), len(first.Catalog()); got != want {
		t.Fatalf("catalog size mismatch after reload: %d vs %d", got, want)
	}
	reloaded, ok := second.Product("p100")
	if !ok {
		t.Fatalf("added product missing after reload")
	}
	if reloaded != product {
		t.Fatalf("product changed across reload: %+v vs %+v", reloaded, product)
	}

	cart := second.Cart()
	if len(cart) != 1 || cart[0].ID != "p100" || cart[0].Quantity != 3 {
		t.Fatalf("cart not reproduced: %+v", cart)
	}
	if got, want := second.TotalPrice(), first.TotalPrice(); got != want {
		t.Fatalf("total mismatch after reload: %v vs %v", got, want)
	}

	session, ok := second.Session()
	if !ok {
		t.Fatalf("session missing after reload")
	}
	if session.Name != "Jane" || session.Email != "a@b.com" || session.Image == "" {
		t.Fatalf("session not reproduced: %+v", session)
	}
}

func TestLogoutDeletesSessionKey(t *testing.T) {
	kvStore := kv.NewMemoryStore()
	s := newBoundStore(t, kvStore)

	s.Login("a@b.com", "Jane", "")
	if _, err := kvStore.Get(context.Background(), sessionKey); err != nil {
		t.Fatalf("session not persisted on login: %v", err)
	}

	s.Logout()
	if _, err := kvStore.Get(context.Background(), sessionKey); !kv.IsNotFound(err) {
		t.Fatalf("expected session key absence after logout, got %v", err)
	}
	if raw, err := kvStore.Get(context.Background(), cartKey); err != nil || raw != "[]" {
		t.Fatalf("expected empty cart payload after logout, got %q (%v)", raw, err)
	}
}

func TestCorruptSlicesDegradeIndependently(t *testing.T) {
	ctx := context.Background()
	kvStore := kv.NewMemoryStore()

	// Valid cart, corrupt catalog and session.
	if err := kvStore.Set(ctx, productsKey, "{corrupt"); err != nil {
		t.Fatalf("seed corrupt catalog: %v", err)
	}
	if err := kvStore.Set(ctx, cartKey, `[{"id":"p1","nameAr":"منتج","nameEn":"Product","descriptionAr":"","descriptionEn":"","price":40,"category":"other","image":"","quantity":2}]`); err != nil {
		t.Fatalf("seed cart: %v", err)
	}
	if err := kvStore.Set(ctx, sessionKey, "not json"); err != nil {
		t.Fatalf("seed corrupt session: %v", err)
	}

	s := newBoundStore(t, kvStore)

	if got, want := len(s.Catalog()), len(domain.SeedCatalog()); got != want {
		t.Fatalf("corrupt catalog did not fall back to seed: %d products", got)
	}
	cart := s.Cart()
	if len(cart) != 1 || cart[0].ID != "p1" || cart[0].Quantity != 2 {
		t.Fatalf("valid cart slice was not loaded: %+v", cart)
	}
	if _, ok := s.Session(); ok {
		t.Fatalf("corrupt session did not fall back to absence")
	}
}

func TestMutationsMirrorSynchronously(t *testing.T) {
	kvStore := kv.NewMemoryStore()
	s := newBoundStore(t, kvStore)

	s.AddToCart(testProduct("p1", "منتج", "Product", 10))
	raw, err := kvStore.Get(context.Background(), cartKey)
	if err != nil {
		t.Fatalf("cart not mirrored after mutation: %v", err)
	}
	if !strings.Contains(raw, `"quantity":1`) {
		t.Fatalf("mirrored cart payload unexpected: %s", raw)
	}

	s.DeleteProduct(domain.SeedCatalog()[0].ID)
	catalogRaw, err := kvStore.Get(context.Background(), productsKey)
	if err != nil {
		t.Fatalf("catalog not mirrored: %v", err)
	}
	if strings.Contains(catalogRaw, domain.SeedCatalog()[0].ID) {
		t.Fatalf("deleted product still in mirrored catalog")
	}
}
