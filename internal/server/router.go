package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/iudanet/ucenter/internal/server/handlers"
	"github.com/iudanet/ucenter/internal/server/metrics"
	"github.com/iudanet/ucenter/internal/server/middleware"
)

// Пути служебных эндпоинтов
const (
	HealthPath  = "/api/health"
	MetricsPath = "/metrics"
)

// RouterDeps зависимости HTTP маршрутизатора
type RouterDeps struct {
	Logger         *slog.Logger
	App            *handlers.AppHandler
	Health         *handlers.HealthHandler
	Metrics        *metrics.Metrics
	Limiter        *middleware.RateLimiter
	RequestTimeout time.Duration
}

// NewRouter регистрирует все маршруты сервера.
// Порядок middleware: request id, метрики, логирование, recovery.
// Лимит частоты и таймаут применяются только к /api/app/*.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(deps.Metrics.Middleware)
	r.Use(middleware.LoggingWithSkip(deps.Logger, []string{HealthPath, MetricsPath}))
	r.Use(middleware.RecoveryMiddleware(deps.Logger))

	r.Get(HealthPath, deps.Health.Health)
	r.Method(http.MethodGet, MetricsPath, deps.Metrics.Handler())

	r.Route("/api/app", func(r chi.Router) {
		r.Use(deps.Limiter.Middleware)
		r.Use(chimw.Timeout(deps.RequestTimeout))

		r.Post("/create", deps.App.CreateApp)
		r.Post("/login", deps.App.AppLogin)
		r.Post("/accountlogin", deps.App.AccountLogin)
		r.Post("/readdata", deps.App.ReadData)
		r.Post("/writedata", deps.App.WriteData)
	})

	return r
}
