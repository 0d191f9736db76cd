package http

import (
	"net/http"
	"time"

	"reltime/internal/core/version"
	phttp "reltime/internal/platform/net/http"
)

// MetaDeps are the meta handler dependencies
type MetaDeps struct {
	ServiceName string
	StartedAt   time.Time
	// Locales lists the supported locales, fallback first
	Locales []string
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool     `json:"ok"      example:"true"`
	Service string   `json:"service" example:"reltime-api"`
	Started string   `json:"started" example:"2026-10-17T09:00:00Z"`
	Uptime  int64    `json:"uptime"  example:"300"`
	Locales []string `json:"locales"`
}

// RegisterMeta mounts /health and /version
func RegisterMeta(r phttp.Router, d MetaDeps) {
	phttp.GetJSON(r, "/health", func(*http.Request) (any, error) {
		return HealthResponse{
			OK:      true,
			Service: d.ServiceName,
			Started: d.StartedAt.UTC().Format(time.RFC3339),
			Uptime:  int64(time.Since(d.StartedAt).Seconds()),
			Locales: d.Locales,
		}, nil
	})
	phttp.GetJSON(r, "/version", func(*http.Request) (any, error) {
		return version.Info(d.ServiceName), nil
	})
}
