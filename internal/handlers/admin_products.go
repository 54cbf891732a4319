package handlers

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bazarna-store/api/internal/platform/httpx"
	"github.com/bazarna-store/api/internal/services"
)

// AdminSecretHeader carries the shared secret gating the admin endpoints.
const AdminSecretHeader = "X-Admin-Secret"

const maxAdminBodySize = 32 * 1024

// AdminCatalogHandlers exposes the gated catalog mutation endpoints.
type AdminCatalogHandlers struct {
	catalog services.CatalogService
}

// NewAdminCatalogHandlers constructs handlers over the catalog service.
func NewAdminCatalogHandlers(catalog services.CatalogService) *AdminCatalogHandlers {
	return &AdminCatalogHandlers{catalog: catalog}
}

// Routes wires the /admin/products endpoints onto the provided router.
func (h *AdminCatalogHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Post("/products", h.createProduct)
	r.Put("/products/{productID}", h.updateProduct)
	r.Delete("/products/{productID}", h.deleteProduct)
}

// RequireAdminSecret rejects requests whose secret header does not match.
// The comparison is constant time; the gate is a convenience lock, not an
// authentication system.
func RequireAdminSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			supplied := r.Header.Get(AdminSecretHeader)
			if subtle.ConstantTimeCompare([]byte(supplied), []byte(secret)) != 1 {
				httpx.WriteError(r.Context(), w, httpx.NewError("admin_secret_required", "missing or invalid admin secret", http.StatusForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (h *AdminCatalogHandlers) createProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.available(ctx, w) {
		return
	}

	payload, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}

	created, err := h.catalog.Create(ctx, services.CreateProductCommand{Product: payload.toDomain()})
	if err != nil {
		h.writeCatalogError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusCreated, buildProductPayload(created))
}

func (h *AdminCatalogHandlers) updateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.available(ctx, w) {
		return
	}

	payload, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}
	payload.ID = chi.URLParam(r, "productID")

	updated, err := h.catalog.Update(ctx, services.UpdateProductCommand{Product: payload.toDomain()})
	if err != nil {
		h.writeCatalogError(ctx, w, err)
		return
	}
	writeJSONResponse(w, http.StatusOK, buildProductPayload(updated))
}

func (h *AdminCatalogHandlers) deleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.available(ctx, w) {
		return
	}

	if err := h.catalog.Delete(ctx, chi.URLParam(r, "productID")); err != nil {
		h.writeCatalogError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminCatalogHandlers) decodeProduct(w http.ResponseWriter, r *http.Request) (productPayload, bool) {
	ctx := r.Context()
	body, err := readLimitedBody(r, maxAdminBodySize)
	if err != nil {
		writeBodyError(ctx, w, err)
		return productPayload{}, false
	}

	var payload productPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "invalid JSON payload", http.StatusBadRequest))
		return productPayload{}, false
	}
	return payload, true
}

func (h *AdminCatalogHandlers) available(ctx context.Context, w http.ResponseWriter) bool {
	if h.catalog == nil {
		httpx.WriteError(ctx, w, httpx.NewError("catalog_service_unavailable", "catalog service is unavailable", http.StatusServiceUnavailable))
		return false
	}
	return true
}

func (h *AdminCatalogHandlers) writeCatalogError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrCatalogInvalidInput):
		httpx.WriteError(ctx, w, httpx.NewError("invalid_product", err.Error(), http.StatusBadRequest))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("catalog_error", "failed to update catalog", http.StatusInternalServerError))
	}
}
