package handlers

import (
	"github.com/bazarna-store/api/internal/domain"
	"github.com/bazarna-store/api/internal/services"
)

// productPayload is the wire shape of a catalog entry, shared by reads and
// admin mutations.
type productPayload struct {
	ID            string  `json:"id"`
	NameAr        string  `json:"nameAr"`
	NameEn        string  `json:"nameEn"`
	DescriptionAr string  `json:"descriptionAr"`
	DescriptionEn string  `json:"descriptionEn"`
	Price         float64 `json:"price"`
	OldPrice      float64 `json:"oldPrice,omitempty"`
	Category      string  `json:"category"`
	Image         string  `json:"image"`
	IsOffer       bool    `json:"isOffer,omitempty"`
}

type cartLinePayload struct {
	productPayload
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

type cartPayload struct {
	Items []cartLinePayload `json:"items"`
	Total float64           `json:"total"`
}

type sessionPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
}

type languagePayload struct {
	Language  string `json:"language"`
	Direction string `json:"direction"`
}

type orderPayload struct {
	Message     string  `json:"message"`
	WhatsAppURL string  `json:"whatsappUrl"`
	Total       float64 `json:"total"`
}

func buildProductPayload(p domain.Product) productPayload {
	return productPayload{
		ID:            p.ID,
		NameAr:        p.NameAr,
		NameEn:        p.NameEn,
		DescriptionAr: p.DescriptionAr,
		DescriptionEn: p.DescriptionEn,
		Price:         p.Price,
		OldPrice:      p.OldPrice,
		Category:      string(p.Category),
		Image:         p.Image,
		IsOffer:       p.IsOffer,
	}
}

func buildProductListPayload(products []domain.Product) []productPayload {
	out := make([]productPayload, 0, len(products))
	for _, p := range products {
		out = append(out, buildProductPayload(p))
	}
	return out
}

func buildCartPayload(view services.CartView) cartPayload {
	items := make([]cartLinePayload, 0, len(view.Lines))
	for _, line := range view.Lines {
		items = append(items, cartLinePayload{
			productPayload: buildProductPayload(line.Product),
			Quantity:       line.Quantity,
			Subtotal:       line.Subtotal(),
		})
	}
	return cartPayload{Items: items, Total: view.Total}
}

func buildSessionPayload(s domain.Session) sessionPayload {
	return sessionPayload{Name: s.Name, Email: s.Email, Image: s.Image}
}

func (p productPayload) toDomain() domain.Product {
	return domain.Product{
		ID:            p.ID,
		NameAr:        p.NameAr,
		NameEn:        p.NameEn,
		DescriptionAr: p.DescriptionAr,
		DescriptionEn: p.DescriptionEn,
		Price:         p.Price,
		OldPrice:      p.OldPrice,
		Category:      domain.Category(p.Category),
		Image:         p.Image,
		IsOffer:       p.IsOffer,
	}
}
