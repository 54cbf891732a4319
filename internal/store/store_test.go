package store

import (
	"strings"
	"testing"

	"github.com/bazarna-store/api/internal/domain"
)

func testProduct(id, nameAr, nameEn string, price float64) domain.Product {
	return domain.Product{
		ID:            id,
		NameAr:        nameAr,
		NameEn:        nameEn,
		DescriptionAr: "وصف " + nameAr,
		DescriptionEn: "Description of " + nameEn,
		Price:         price,
		Category:      domain.CategoryOther,
		Image:         "https://images.bazarna.shop/products/" + id + ".jpg",
	}
}

func TestAddToCartMergesLines(t *testing.T) {
	s := New()
	p := testProduct("p1", "منتج", "Product", 100)

	s.AddToCart(p)
	s.AddToCart(p)

	cart := s.Cart()
	if len(cart) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(cart))
	}
	if cart[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", cart[0].Quantity)
	}

	s.AddToCart(testProduct("p2", "آخر", "Another", 50))
	if got := len(s.Cart()); got != 2 {
		t.Fatalf("expected two lines after distinct add, got %d", got)
	}
}

func TestUpdateQuantity(t *testing.T) {
	s := New()
	s.AddToCart(testProduct("p1", "منتج", "Product", 100))

	t.Run("sets quantity", func(t *testing.T) {
		s.UpdateQuantity("p1", 5)
		if got := s.Cart()[0].Quantity; got != 5 {
			t.Fatalf("expected quantity 5, got %d", got)
		}
	})

	t.Run("below one is ignored", func(t *testing.T) {
		s.UpdateQuantity("p1", 0)
		if got := s.Cart()[0].Quantity; got != 5 {
			t.Fatalf("quantity changed on sub-1 update: %d", got)
		}
		s.UpdateQuantity("p1", -3)
		if got := s.Cart()[0].Quantity; got != 5 {
			t.Fatalf("quantity changed on negative update: %d", got)
		}
	})

	t.Run("absent id is ignored", func(t *testing.T) {
		s.UpdateQuantity("missing", 7)
		cart := s.Cart()
		if len(cart) != 1 || cart[0].Quantity != 5 {
			t.Fatalf("cart changed on absent id: %+v", cart)
		}
	})

	t.Run("removal is explicit", func(t *testing.T) {
		s.RemoveFromCart("p1")
		if got := len(s.Cart()); got != 0 {
			t.Fatalf("expected empty cart after removal, got %d lines", got)
		}
		// Removing again is a no-op.
		s.RemoveFromCart("p1")
	})
}

func TestTotalPrice(t *testing.T) {
	s := New()
	if got := s.TotalPrice(); got != 0 {
		t.Fatalf("expected 0 total for empty cart, got %v", got)
	}

	s.AddToCart(testProduct("p1", "أ", "A", 120.5))
	s.AddToCart(testProduct("p2", "ب", "B", 79.5))
	s.UpdateQuantity("p1", 3)

	want := 120.5*3 + 79.5
	if got := s.TotalPrice(); got != want {
		t.Fatalf("expected total %v, got %v", want, got)
	}
}

func TestFilteredProducts(t *testing.T) {
	s := New()
	s.RestoreCatalog([]domain.Product{
		testProduct("p1", "سماعات", "Wireless Headphones", 750),
		testProduct("p2", "إعلان مميز", "Featured Promo", 10),
		testProduct("p3", "قميص", "Cotton Shirt", 350),
	})

	t.Run("empty query returns catalog in order", func(t *testing.T) {
		s.SetSearchQuery("")
		got := s.FilteredProducts()
		if len(got) != 3 {
			t.Fatalf("expected full catalog, got %d products", len(got))
		}
		for i, id := range []string{"p1", "p2", "p3"} {
			if got[i].ID != id {
				t.Fatalf("catalog order not preserved: position %d holds %s", i, got[i].ID)
			}
		}
	})

	t.Run("english substring case-insensitive", func(t *testing.T) {
		s.SetSearchQuery("wireless HEAD")
		got := s.FilteredProducts()
		if len(got) != 1 || got[0].ID != "p1" {
			t.Fatalf("expected p1 only, got %+v", got)
		}
	})

	t.Run("hamza variants treated equal", func(t *testing.T) {
		s.SetSearchQuery("اعلان")
		got := s.FilteredProducts()
		if len(got) != 1 || got[0].ID != "p2" {
			t.Fatalf("expected p2 for normalized arabic query, got %+v", got)
		}
	})

	t.Run("description matches too", func(t *testing.T) {
		s.SetSearchQuery("description of cotton")
		got := s.FilteredProducts()
		if len(got) != 1 || got[0].ID != "p3" {
			t.Fatalf("expected description match on p3, got %+v", got)
		}
	})

	t.Run("results are a subset matching a condition", func(t *testing.T) {
		s.SetSearchQuery("م")
		for _, p := range s.FilteredProducts() {
			if !strings.Contains(p.NameAr, "م") && !strings.Contains(p.DescriptionAr, "م") {
				t.Fatalf("product %s does not match query", p.ID)
			}
		}
	})

	t.Run("no match yields empty", func(t *testing.T) {
		s.SetSearchQuery("zzzz")
		if got := s.FilteredProducts(); len(got) != 0 {
			t.Fatalf("expected no results, got %+v", got)
		}
	})
}

func TestToggleLanguage(t *testing.T) {
	s := New()
	if got := s.Language(); got != domain.LanguageArabic {
		t.Fatalf("expected default locale ar, got %s", got)
	}
	if got := s.ToggleLanguage(); got != domain.LanguageEnglish {
		t.Fatalf("expected toggle to en, got %s", got)
	}
	if got := s.ToggleLanguage(); got != domain.LanguageArabic {
		t.Fatalf("expected second toggle to restore ar, got %s", got)
	}
	if domain.LanguageArabic.Direction() != "rtl" || domain.LanguageEnglish.Direction() != "ltr" {
		t.Fatalf("unexpected directions: %s %s", domain.LanguageArabic.Direction(), domain.LanguageEnglish.Direction())
	}
}

func TestLoginDerivesDeterministicAvatar(t *testing.T) {
	s := New()

	first := s.Login("a@b.com", "Jane", "")
	if first.Image == "" {
		t.Fatalf("expected derived avatar for empty photo URL")
	}
	if !strings.Contains(first.Image, "name=Jane") {
		t.Fatalf("avatar not derived from name: %s", first.Image)
	}

	second := s.Login("a@b.com", "Jane", "")
	if first.Image != second.Image {
		t.Fatalf("avatar not deterministic: %s vs %s", first.Image, second.Image)
	}

	custom := s.Login("a@b.com", "Jane", "https://example.com/me.png")
	if custom.Image != "https://example.com/me.png" {
		t.Fatalf("provided photo URL not kept: %s", custom.Image)
	}
}

func TestLogoutClearsSessionAndCart(t *testing.T) {
	s := New()
	s.Login("a@b.com", "Jane", "")
	s.AddToCart(testProduct("p1", "منتج", "Product", 100))
	s.AddToCart(testProduct("p2", "آخر", "Another", 50))

	s.Logout()

	if _, ok := s.Session(); ok {
		t.Fatalf("session still present after logout")
	}
	if got := len(s.Cart()); got != 0 {
		t.Fatalf("cart not cleared on logout: %d lines", got)
	}
}

func TestCatalogMutations(t *testing.T) {
	s := New()
	s.RestoreCatalog([]domain.Product{testProduct("p1", "أول", "First", 10)})

	t.Run("add prepends", func(t *testing.T) {
		s.AddProduct(testProduct("p2", "ثاني", "Second", 20))
		catalog := s.Catalog()
		if len(catalog) != 2 || catalog[0].ID != "p2" {
			t.Fatalf("expected new product first, got %+v", catalog)
		}
	})

	t.Run("update replaces matching id", func(t *testing.T) {
		updated := testProduct("p1", "أول", "First (updated)", 15)
		s.UpdateProduct(updated)
		p, ok := s.Product("p1")
		if !ok || p.NameEn != "First (updated)" || p.Price != 15 {
			t.Fatalf("product not replaced: %+v", p)
		}
	})

	t.Run("update with unknown id changes nothing", func(t *testing.T) {
		before := s.Catalog()
		s.UpdateProduct(testProduct("ghost", "شبح", "Ghost", 1))
		after := s.Catalog()
		if len(before) != len(after) {
			t.Fatalf("catalog length changed: %d -> %d", len(before), len(after))
		}
		if _, ok := s.Product("ghost"); ok {
			t.Fatalf("unknown id was inserted by update")
		}
	})

	t.Run("delete removes and tolerates absence", func(t *testing.T) {
		s.DeleteProduct("p2")
		if _, ok := s.Product("p2"); ok {
			t.Fatalf("product p2 still present after delete")
		}
		s.DeleteProduct("p2")
	})
}

func TestNotificationsPerSlice(t *testing.T) {
	s := New()
	var events []Slice
	s.Subscribe(func(slice Slice) {
		events = append(events, slice)
	})

	s.AddProduct(testProduct("p1", "منتج", "Product", 100))
	s.AddToCart(testProduct("p1", "منتج", "Product", 100))
	s.Login("a@b.com", "Jane", "")
	s.Logout()

	want := []Slice{SliceCatalog, SliceCart, SliceSession, SliceSession, SliceCart}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("event %d: expected %s, got %s", i, want[i], events[i])
		}
	}

	// No-op mutations stay silent.
	events = nil
	s.UpdateQuantity("missing", 2)
	s.UpdateQuantity("p1", 0)
	s.RemoveFromCart("missing")
	s.DeleteProduct("missing")
	if len(events) != 0 {
		t.Fatalf("no-op mutations emitted events: %v", events)
	}
}
