package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"fadhakker-backend/internal/handlers"
	"fadhakker-backend/internal/middleware"
)

func New(
	chatHandler *handlers.ChatHandler,
	apiLimiter *middleware.RateLimiter,
	chatLimiter *middleware.RateLimiter,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(apiLimiter.Middleware)

		r.Route("/chat", func(r chi.Router) {
			r.Get("/", chatHandler.Health)

			r.Group(func(r chi.Router) {
				r.Use(chatLimiter.Middleware)
				r.Post("/", chatHandler.Ask)
			})
		})
	})

	return r
}
