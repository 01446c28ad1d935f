package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader, "Retry-After", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(middleware.Compress(5, "application/json", "text/csv"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// public routes
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/auth/refresh", h.refresh)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.rateLimit(h.limiters.Auth))
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/register", h.register)
	})

	// routes for every authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.rateLimit(h.limiters.API))

		r.Get("/api/auth/me", h.me)
		r.Put("/api/auth/profile", h.updateProfile)
		r.Put("/api/auth/password", h.changePassword)

		r.Post("/api/entries", h.createEntry)
		r.Get("/api/entries", h.listEntries)
		r.Get("/api/entries/stats", h.entryStats)
		r.Get("/api/entries/check/{noResi}", h.checkReceipt)
		r.Get("/api/entries/{id}", h.getEntry)
		r.Put("/api/entries/{id}", h.updateEntry)

		r.Get("/api/dashboard/leaderboard", h.leaderboard)
		r.Get("/api/dashboard/user-stats", h.userStats)

		// admin only
		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)

			r.Delete("/api/entries/{id}", h.deleteEntry)
			r.Get("/api/entries/export", h.exportEntries)

			r.Get("/api/dashboard/global-stats", h.globalStats)
			r.Get("/api/dashboard/earnings", h.earnings)

			r.Get("/api/users", h.listUsers)
			r.Put("/api/users/{id}/active", h.setUserActive)
			r.Delete("/api/users/{id}", h.deleteUser)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
