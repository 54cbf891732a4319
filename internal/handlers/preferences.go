package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bazarna-store/api/internal/platform/httpx"
	"github.com/bazarna-store/api/internal/services"
)

// PreferencesHandlers exposes the display language endpoints.
type PreferencesHandlers struct {
	preferences services.PreferencesService
}

// NewPreferencesHandlers constructs handlers over the preferences service.
func NewPreferencesHandlers(preferences services.PreferencesService) *PreferencesHandlers {
	return &PreferencesHandlers{preferences: preferences}
}

// Routes wires the /preferences endpoints onto the provided router.
func (h *PreferencesHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/language", h.currentLanguage)
	r.Put("/language", h.toggleLanguage)
}

func (h *PreferencesHandlers) currentLanguage(w http.ResponseWriter, r *http.Request) {
	if h.preferences == nil {
		h.unavailable(w, r)
		return
	}
	writeLanguageView(w, h.preferences.Language(r.Context()))
}

// toggleLanguage flips between the two locales. There is no direct set; the
// storefront only ever offers the other language.
func (h *PreferencesHandlers) toggleLanguage(w http.ResponseWriter, r *http.Request) {
	if h.preferences == nil {
		h.unavailable(w, r)
		return
	}
	writeLanguageView(w, h.preferences.ToggleLanguage(r.Context()))
}

func writeLanguageView(w http.ResponseWriter, view services.LanguageView) {
	writeJSONResponse(w, http.StatusOK, languagePayload{
		Language:  string(view.Language),
		Direction: view.Direction,
	})
}

func (h *PreferencesHandlers) unavailable(w http.ResponseWriter, r *http.Request) {
	httpx.WriteError(r.Context(), w, httpx.NewError("preferences_service_unavailable", "preferences service is unavailable", http.StatusServiceUnavailable))
}
