package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/umtaldejr/money-tracker-api/internal/api/http/response"
)

// Meta handles the welcome and health endpoints.
type Meta struct {
	version     string
	environment string
	startedAt   time.Time
}

// NewMeta creates a new Meta handler.
func NewMeta(version, environment string) *Meta {
	return &Meta{version: version, environment: environment, startedAt: time.Now()}
}

// Welcome reports the service name, version and environment.
func (h *Meta) Welcome(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"message":     "Welcome to Money Tracker API",
		"version":     h.version,
		"environment": h.environment,
		"status":      "running",
	})
}

// Health reports liveness, uptime in seconds and process memory usage.
func (h *Meta) Health(w http.ResponseWriter, _ *http.Request) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	response.JSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.startedAt).Seconds(),
		"memory": map[string]uint64{
			"heapAlloc": mem.HeapAlloc,
			"heapSys":   mem.HeapSys,
			"sys":       mem.Sys,
		},
	})
}
