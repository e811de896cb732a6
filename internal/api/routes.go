package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes configures the router: the contact endpoint plus health.
// The contact handler does its own method gating so non-POST requests get
// the contract's 405 with an Allow header rather than chi's default.
func SetupRoutes(h *Handlers, hc *HealthChecker) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	// CORS - the browser form posts cross-origin from the portfolio site
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.contact.AllowedOrigins,
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if hc != nil {
		r.Get("/health", hc.HandleHealth)
	}

	r.HandleFunc("/api/contact", h.HandleContact)

	return r
}
