package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// HealthStatus represents the overall health of the service.
type HealthStatus struct {
	Status  string                    `json:"status"` // "healthy", "degraded"
	Version string                    `json:"version"`
	Uptime  string                    `json:"uptime"`
	Checks  map[string]ComponentCheck `json:"checks"`
}

// ComponentCheck represents the health of a single dependency.
type ComponentCheck struct {
	Status  string `json:"status"` // "up", "down", "not_configured"
	Latency string `json:"latency,omitempty"`
	Message string `json:"message,omitempty"`
}

// HealthChecker reports on the service's dependencies: the rate-limit store
// and the configured email provider.
type HealthChecker struct {
	redisClient *redis.Client
	provider    string
	startTime   time.Time
}

// NewHealthChecker creates a new HealthChecker. The Redis client may be nil,
// in which case the store check reports "not_configured".
func NewHealthChecker(redisClient *redis.Client, provider string) *HealthChecker {
	return &HealthChecker{
		redisClient: redisClient,
		provider:    provider,
		startTime:   time.Now(),
	}
}

const healthVersion = "1.0.0"

// HandleHealth returns the health status of the service and its
// dependencies.
//
//	GET /health
func (hc *HealthChecker) HandleHealth(w http.ResponseWriter, r *http.Request) {
	checks := map[string]ComponentCheck{
		"ratelimit_store": hc.checkRedis(r),
		"email_provider":  {Status: "up", Message: hc.provider},
	}

	status := "healthy"
	httpStatus := http.StatusOK
	for _, c := range checks {
		if c.Status == "down" {
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		}
	}

	respondJSON(w, httpStatus, HealthStatus{
		Status:  status,
		Version: healthVersion,
		Uptime:  time.Since(hc.startTime).Round(time.Second).String(),
		Checks:  checks,
	})
}

func (hc *HealthChecker) checkRedis(r *http.Request) ComponentCheck {
	if hc.redisClient == nil {
		return ComponentCheck{Status: "not_configured"}
	}

	start := time.Now()
	if err := hc.redisClient.Ping(r.Context()).Err(); err != nil {
		return ComponentCheck{Status: "down", Message: fmt.Sprintf("ping failed: %v", err)}
	}
	return ComponentCheck{Status: "up", Latency: time.Since(start).String()}
}
