package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bazarna-store/api/internal/platform/httpx"
	"github.com/bazarna-store/api/internal/services"
)

const maxSessionBodySize = 8 * 1024

// SessionHandlers exposes the simulated login endpoints.
type SessionHandlers struct {
	sessions services.SessionService
}

// NewSessionHandlers constructs handlers over the session service.
func NewSessionHandlers(sessions services.SessionService) *SessionHandlers {
	return &SessionHandlers{sessions: sessions}
}

// Routes wires the /session endpoints onto the provided router.
func (h *SessionHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.currentSession)
	r.Post("/", h.login)
	r.Delete("/", h.logout)
}

func (h *SessionHandlers) currentSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.sessions == nil {
		h.unavailable(w, r)
		return
	}

	session, ok := h.sessions.Current(ctx)
	if !ok {
		httpx.WriteError(ctx, w, httpx.NewError("no_session", "no active session", http.StatusNotFound))
		return
	}
	writeJSONResponse(w, http.StatusOK, buildSessionPayload(session))
}

type loginRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoUrl"`
}

func (h *SessionHandlers) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if h.sessions == nil {
		h.unavailable(w, r)
		return
	}

	body, err := readLimitedBody(r, maxSessionBodySize)
	if err != nil {
		writeBodyError(ctx, w, err)
		return
	}

	var req loginRequest
	if err := json.Unmarshal(body, &req); err != nil {
		httpx.WriteError(ctx, w, httpx.NewError("invalid_request", "invalid JSON payload", http.StatusBadRequest))
		return
	}

	session, err := h.sessions.Login(ctx, services.LoginCommand{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		if errors.Is(err, services.ErrSessionInvalidInput) {
			httpx.WriteError(ctx, w, httpx.NewError("invalid_login", err.Error(), http.StatusBadRequest))
			return
		}
		httpx.WriteError(ctx, w, httpx.NewError("session_error", "failed to start session", http.StatusInternalServerError))
		return
	}
	writeJSONResponse(w, http.StatusCreated, buildSessionPayload(session))
}

// logout ends the session; the cart empties with it.
func (h *SessionHandlers) logout(w http.ResponseWriter, r *http.Request) {
	if h.sessions == nil {
		h.unavailable(w, r)
		return
	}
	h.sessions.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandlers) unavailable(w http.ResponseWriter, r *http.Request) {
	httpx.WriteError(r.Context(), w, httpx.NewError("session_service_unavailable", "session service is unavailable", http.StatusServiceUnavailable))
}
