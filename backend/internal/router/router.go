package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itchan-dev/forum/backend/internal/setup"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/middleware/metrics"
)

// New creates a chi router with all forum routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(mw.RequestId)
	r.Use(mw.RequestLogger)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.HTTP.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", mw.RequestIdHeader},
		ExposedHeaders:   []string{mw.RequestIdHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.SecurityHeaders(deps.Config.Public.SecureCookies))

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/threads", func(r chi.Router) {
		r.Get("/{threadId}", h.GetThread)

		r.Group(func(r chi.Router) {
			r.Use(authMw.NeedAuth())
			r.Post("/", h.CreateThread)
			r.Post("/{threadId}/comments", h.AddComment)
			r.Delete("/{threadId}/comments/{commentId}", h.DeleteComment)
			r.Post("/{threadId}/comments/{commentId}/replies", h.AddReply)
			r.Delete("/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
		})
	})

	return r
}
