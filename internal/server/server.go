package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/iudanet/ucenter/internal/crypto"
	"github.com/iudanet/ucenter/internal/server/config"
	"github.com/iudanet/ucenter/internal/server/handlers"
	"github.com/iudanet/ucenter/internal/server/jwt"
	"github.com/iudanet/ucenter/internal/server/metrics"
	"github.com/iudanet/ucenter/internal/server/middleware"
	"github.com/iudanet/ucenter/internal/server/service"
	"github.com/iudanet/ucenter/internal/server/storage"
	"github.com/iudanet/ucenter/internal/server/storage/boltdb"
	"github.com/iudanet/ucenter/internal/server/storage/sqlite"
)

// appTokenKeyPurpose назначение ключа подписи токенов приложений (HKDF info)
const appTokenKeyPurpose = "app-token"

// rateLimitIdleTTL время хранения лимитера неактивного клиента
const rateLimitIdleTTL = 10 * time.Minute

// Server HTTP сервер брокера вместе с хранилищем
type Server struct {
	logger     *slog.Logger
	storage    storage.Storage
	limiter    *middleware.RateLimiter
	httpServer *http.Server
	handler    http.Handler

	shutdownTimeout time.Duration
}

// OpenStorage открывает хранилище storageType (config.StorageSQLite или config.StorageBolt)
func OpenStorage(ctx context.Context, storageType, dbPath string) (storage.Storage, error) {
	switch storageType {
	case config.StorageSQLite:
		s, err := sqlite.New(ctx, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite storage: %w", err)
		}
		return s, nil
	case config.StorageBolt:
		s, err := boltdb.New(ctx, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open bolt storage: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage %q", storageType)
	}
}

// New собирает сервер поверх уже открытого хранилища.
// Хранилище закрывается в Close.
func New(cfg *config.Config, logger *slog.Logger, store storage.Storage, version string) (*Server, error) {
	signingKey, err := crypto.DeriveSigningKey([]byte(cfg.MasterSecret), appTokenKeyPurpose)
	if err != nil {
		return nil, fmt.Errorf("failed to derive app token key: %w", err)
	}

	tokens := jwt.NewService(signingKey, cfg.AppTokenTTL)
	svc := service.New(logger, store, store, store, tokens)
	m := metrics.New()
	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst, rateLimitIdleTTL, cfg.TrustProxy, logger)

	handler := NewRouter(RouterDeps{
		Logger:         logger,
		App:            handlers.NewAppHandler(logger, svc, m),
		Health:         handlers.NewHealthHandler(logger, store, version),
		Metrics:        m,
		Limiter:        limiter,
		RequestTimeout: cfg.RequestTimeout,
	})

	return &Server{
		logger:  logger,
		storage: store,
		limiter: limiter,
		handler: handler,
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       2 * time.Minute,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
	}, nil
}

// Handler возвращает корневой HTTP handler (для тестов)
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run обслуживает запросы до отмены ctx, затем корректно останавливает сервер
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("server listening", slog.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server", slog.Duration("timeout", s.shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

// Close освобождает ресурсы сервера
func (s *Server) Close() error {
	s.limiter.Stop()
	if err := s.storage.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	return nil
}
