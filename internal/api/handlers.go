package api

import (
	"encoding/json"
	"net/http"

	"github.com/mzimmersmith/portfolio-api/internal/config"
	"github.com/mzimmersmith/portfolio-api/internal/dispatch"
	"github.com/mzimmersmith/portfolio-api/internal/ratelimit"
)

// Handlers contains all HTTP handlers. Collaborators are injected so tests
// can substitute fakes.
type Handlers struct {
	limiter    *ratelimit.Limiter
	dispatcher dispatch.Dispatcher
	contact    config.ContactConfig
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(limiter *ratelimit.Limiter, dispatcher dispatch.Dispatcher, contact config.ContactConfig) *Handlers {
	return &Handlers{
		limiter:    limiter,
		dispatcher: dispatcher,
		contact:    contact,
	}
}

// Response helpers

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
