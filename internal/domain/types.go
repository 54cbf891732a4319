package domain

// Language identifies one of the two storefront locales.
type Language string

const (
	// LanguageArabic is the default storefront locale, rendered right-to-left.
	LanguageArabic Language = "ar"
	// LanguageEnglish is the secondary storefront locale, rendered left-to-right.
	LanguageEnglish Language = "en"
)

// Valid reports whether the value is one of the two supported locales.
func (l Language) Valid() bool {
	return l == LanguageArabic || l == LanguageEnglish
}

// Toggle returns the other locale.
func (l Language) Toggle() Language {
	if l == LanguageArabic {
		return LanguageEnglish
	}
	return LanguageArabic
}

// Direction returns the document text direction for the locale.
func (l Language) Direction() string {
	if l == LanguageArabic {
		return "rtl"
	}
	return "ltr"
}

// Category enumerates the fixed product categories.
type Category string

const (
	CategoryCosmetics   Category = "cosmetics"
	CategoryElectronics Category = "electronics"
	CategoryFashion     Category = "fashion"
	CategoryOther       Category = "other"
)

// Valid reports whether the category is part of the fixed enumeration.
func (c Category) Valid() bool {
	switch c {
	case CategoryCosmetics, CategoryElectronics, CategoryFashion, CategoryOther:
		return true
	}
	return false
}

// Categories lists the fixed category enumeration in display order.
func Categories() []Category {
	return []Category{CategoryCosmetics, CategoryElectronics, CategoryFashion, CategoryOther}
}

// Product is a catalog entry with bilingual display fields.
// Price and OldPrice are currency-agnostic units; OldPrice is meaningful only
// when IsOffer is set and is conventionally greater than Price.
type Product struct {
	ID            string
	NameAr        string
	NameEn        string
	DescriptionAr string
	DescriptionEn string
	Price         float64
	OldPrice      float64
	Category      Category
	Image         string
	IsOffer       bool
}

// Name returns the display name for the requested locale.
func (p Product) Name(lang Language) string {
	if lang == LanguageEnglish {
		return p.NameEn
	}
	return p.NameAr
}

// Description returns the description for the requested locale.
func (p Product) Description(lang Language) string {
	if lang == LanguageEnglish {
		return p.DescriptionEn
	}
	return p.DescriptionAr
}

// CartLine is a product captured in the cart together with its quantity.
// The cart holds at most one line per product id.
type CartLine struct {
	Product
	Quantity int
}

// Subtotal returns price multiplied by quantity for the line.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Session is the simulated authenticated identity. Its presence gates
// checkout; no credential is ever verified against a backend.
type Session struct {
	Name  string
	Email string
	Image string
}

// OrderDetails carries the customer fields collected at checkout.
type OrderDetails struct {
	Name    string
	Email   string
	Address string
	City    string
	Phone   string
	Notes   string
}
