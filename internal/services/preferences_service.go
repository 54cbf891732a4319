package services

import (
	"context"
	"errors"

	"github.com/bazarna-store/api/internal/store"
)

// ErrPreferencesStoreMissing indicates the state store dependency is absent.
var ErrPreferencesStoreMissing = errors.New("preferences service: state store is not configured")

// PreferencesServiceDeps bundles constructor inputs for the preferences service.
type PreferencesServiceDeps struct {
	Store  *store.Store
	Logger func(ctx context.Context, event string, fields map[string]any)
}

type preferencesService struct {
	store  *store.Store
	logger func(ctx context.Context, event string, fields map[string]any)
}

// NewPreferencesService constructs the preferences service with the supplied dependencies.
func NewPreferencesService(deps PreferencesServiceDeps) (PreferencesService, error) {
	if deps.Store == nil {
		return nil, ErrPreferencesStoreMissing
	}
	logger := deps.Logger
	if logger == nil {
		logger = func(context.Context, string, map[string]any) {}
	}
	return &preferencesService{store: deps.Store, logger: logger}, nil
}

func (s *preferencesService) Language(_ context.Context) LanguageView {
	return languageView(s.store.Language())
}

func (s *preferencesService) ToggleLanguage(ctx context.Context) LanguageView {
	next := s.store.ToggleLanguage()
	s.logger(ctx, "preferences.language_toggled", map[string]any{"language": string(next)})
	return languageView(next)
}

func languageView(lang Language) LanguageView {
	return LanguageView{Language: lang, Direction: lang.Direction()}
}
