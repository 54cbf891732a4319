package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/bazarna-store/api/internal/domain"
	"github.com/bazarna-store/api/internal/handlers"
	"github.com/bazarna-store/api/internal/platform/config"
	"github.com/bazarna-store/api/internal/platform/kv"
	"github.com/bazarna-store/api/internal/platform/observability"
	"github.com/bazarna-store/api/internal/services"
	"github.com/bazarna-store/api/internal/store"
)

func main() {
	ctx := context.Background()

	baseLogger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()

	logger := baseLogger.Named("api")
	ctx = observability.WithLogger(ctx, logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	kvStore, closeKV, err := newKVStore(cfg.KV)
	if err != nil {
		logger.Fatal("failed to initialise kv backend", zap.Error(err))
	}
	defer func() {
		if err := closeKV(); err != nil {
			logger.Warn("kv close error", zap.Error(err))
		}
	}()
	logger.Info("kv backend ready", zap.String("backend", cfg.KV.Backend))

	st := store.New()
	st.RestoreLanguage(domain.Language(cfg.Locale.DefaultLanguage))

	persister, err := store.NewPersister(store.PersisterDeps{
		KV:     kvStore,
		Store:  st,
		Logger: logger.Named("persist"),
	})
	if err != nil {
		logger.Fatal("failed to initialise persister", zap.Error(err))
	}
	persister.Load(ctx)
	persister.Bind()

	eventLogger := observability.EventLogger(logger.Named("events"))

	catalogService, err := services.NewCatalogService(services.CatalogServiceDeps{
		Store:  st,
		Logger: eventLogger,
	})
	if err != nil {
		logger.Fatal("failed to initialise catalog service", zap.Error(err))
	}
	cartService, err := services.NewCartService(services.CartServiceDeps{
		Store:  st,
		Logger: eventLogger,
	})
	if err != nil {
		logger.Fatal("failed to initialise cart service", zap.Error(err))
	}
	sessionService, err := services.NewSessionService(services.SessionServiceDeps{
		Store:  st,
		Logger: eventLogger,
	})
	if err != nil {
		logger.Fatal("failed to initialise session service", zap.Error(err))
	}
	preferencesService, err := services.NewPreferencesService(services.PreferencesServiceDeps{
		Store:  st,
		Logger: eventLogger,
	})
	if err != nil {
		logger.Fatal("failed to initialise preferences service", zap.Error(err))
	}
	checkoutService, err := services.NewCheckoutService(services.CheckoutServiceDeps{
		Store:          st,
		WhatsAppNumber: cfg.Checkout.WhatsAppNumber,
		Logger:         eventLogger,
	})
	if err != nil {
		logger.Fatal("failed to initialise checkout service", zap.Error(err))
	}

	router := handlers.NewRouter(
		handlers.WithMiddlewares(
			observability.InjectLoggerMiddleware(logger),
			observability.TraceMiddleware(),
			observability.RequestLoggerMiddleware(),
			observability.RecoveryMiddleware(logger),
		),
		handlers.WithHealthHandlers(handlers.NewHealthHandlers(kvStore)),
		handlers.WithProductRoutes(handlers.NewCatalogHandlers(catalogService).Routes),
		handlers.WithCartRoutes(handlers.NewCartHandlers(cartService).Routes),
		handlers.WithSessionRoutes(handlers.NewSessionHandlers(sessionService).Routes),
		handlers.WithCheckoutRoutes(handlers.NewCheckoutHandlers(checkoutService).Routes),
		handlers.WithPreferenceRoutes(handlers.NewPreferencesHandlers(preferencesService).Routes),
		handlers.WithAdminRoutes(
			handlers.NewAdminCatalogHandlers(catalogService).Routes,
			handlers.RequireAdminSecret(cfg.Admin.Secret),
		),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("bazarna api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newKVStore selects the persistence backend from configuration. The close
// function releases backend resources at shutdown.
func newKVStore(cfg config.KVConfig) (kv.Store, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Backend {
	case config.KVBackendMemory:
		return kv.NewMemoryStore(), noop, nil
	case config.KVBackendFile:
		fileStore, err := kv.NewFileStore(cfg.FilePath)
		if err != nil {
			return nil, nil, err
		}
		return fileStore, noop, nil
	case config.KVBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		redisStore, err := kv.NewRedisStore(client, cfg.KeyPrefix)
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return redisStore, client.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown kv backend %q", cfg.Backend)
	}
}
