package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bazarna-store/api/internal/platform/httpx"
	"github.com/bazarna-store/api/internal/services"
)

// CatalogHandlers exposes the public product browsing endpoints.
type CatalogHandlers struct {
	catalog services.CatalogService
}

// NewCatalogHandlers constructs handlers over the catalog service.
func NewCatalogHandlers(catalog services.CatalogService) *CatalogHandlers {
	return &CatalogHandlers{catalog: catalog}
}

// Routes wires the /products endpoints onto the provided router.
func (h *CatalogHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.listProducts)
}

// listProducts returns the catalog, filtered by the q parameter when
// present. The query becomes the live search query for the store.
func (h *CatalogHandlers) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.catalog == nil {
		httpx.WriteError(ctx, w, httpx.NewError("catalog_service_unavailable", "catalog service is unavailable", http.StatusServiceUnavailable))
		return
	}

	query := r.URL.Query()
	var products []services.Product
	if query.Has("q") {
		products = h.catalog.Search(ctx, query.Get("q"))
	} else {
		products = h.catalog.List(ctx)
	}
	writeJSONResponse(w, http.StatusOK, map[string]any{
		"products": buildProductListPayload(products),
	})
}
