package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/spiritquiz/backend/internal/api/middleware"
	quizapi "github.com/spiritquiz/backend/internal/api/quiz"
	"github.com/spiritquiz/backend/internal/config"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(quizHandler *quizapi.Handler, cfg *config.Config, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.AllowedOrigin))
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// The quiz endpoint sits behind its own rate limit; static assets don't.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitCfg.Window, cfg.RateLimitCfg.MaxRequests, logger))
		quizapi.RegisterRoutes(r, quizHandler)
	})

	// Quiz UI
	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))

	return r
}
