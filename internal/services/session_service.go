package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bazarna-store/api/internal/store"
)

var (
	// ErrSessionStoreMissing indicates the state store dependency is absent.
	ErrSessionStoreMissing = errors.New("session service: state store is not configured")
	// ErrSessionInvalidInput indicates the caller supplied invalid input.
	ErrSessionInvalidInput = errors.New("session service: invalid input")
)

// SessionServiceDeps bundles constructor inputs for the session service.
type SessionServiceDeps struct {
	Store  *store.Store
	Logger func(ctx context.Context, event string, fields map[string]any)
}

type sessionService struct {
	store  *store.Store
	logger func(ctx context.Context, event string, fields map[string]any)
}

// NewSessionService constructs the session service with the supplied dependencies.
func NewSessionService(deps SessionServiceDeps) (SessionService, error) {
	if deps.Store == nil {
		return nil, ErrSessionStoreMissing
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &sessionService{store: deps.Store, logger: logger}, nil
}

func (s *sessionService) Current(_ context.Context) (Session, bool) {
	return s.store.Session()
}

func (s *sessionService) Login(ctx context.Context, cmd LoginCommand) (Session, error) {
	email := strings.TrimSpace(cmd.Email)
	name := strings.TrimSpace(cmd.Name)
	if email == "" {
		return Session{}, fmt.Errorf("%w: email is required", ErrSessionInvalidInput)
	}
	if name == "" {
		return Session{}, fmt.Errorf("%w: name is required", ErrSessionInvalidInput)
	}

	session := s.store.Login(email, name, strings.TrimSpace(cmd.PhotoURL))
	s.logger(ctx, "session.logged_in", map[string]any{"email": email})
	return session, nil
}

// Logout ends the session and empties the cart, matching the single-shopper
// lifecycle where an abandoned identity never leaves a cart behind.
func (s *sessionService) Logout(ctx context.Context) {
	s.store.Logout()
	s.logger(ctx, "session.logged_out", nil)
}
