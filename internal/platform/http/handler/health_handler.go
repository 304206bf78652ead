// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// CheckTimeout bounds each dependency probe.
const CheckTimeout = 2 * time.Second

// Check probes one backing dependency (store, cache).
type Check func(ctx context.Context) error

// HealthHandler serves /healthz.
type HealthHandler struct {
	checks map[string]Check
}

// NewHealthHandler creates a HealthHandler. A nil or empty map reports
// the process itself only.
func NewHealthHandler(checks map[string]Check) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Health handles /healthz. HEAD and OPTIONS never run the checks.
// A failing check turns the response into 503 with status "degraded".
func (h *HealthHandler) Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
		return
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
		return
	}

	if len(h.checks) == 0 {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status, code := "ok", http.StatusOK
	results := make(map[string]string, len(names))
	for _, name := range names {
		ctx, cancel := context.WithTimeout(c.Request.Context(), CheckTimeout)
		err := h.checks[name](ctx)
		cancel()
		if err != nil {
			results[name] = err.Error()
			status, code = "degraded", http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}
	c.JSON(code, gin.H{"status": status, "checks": results})
}
