package middleware

import (
	"net/http"
	"time"

	pstrings "reltime/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// RealIP sets RemoteAddr to the upstream IP based on X-Forwarded-For headers
func RealIP() func(http.Handler) http.Handler { return chimw.RealIP }

// Timeout cancels the request context after d
func Timeout(d time.Duration) func(http.Handler) http.Handler { return chimw.Timeout(d) }

// NoCache sets headers to disable client and proxy caching
func NoCache() func(http.Handler) http.Handler { return chimw.NoCache }

// PingPath is the load balancer heartbeat path answered by Defaults
const PingPath = "/ping"

// Heartbeat replies with 200 OK to GET path, useful for LB health checks
func Heartbeat(path string) func(http.Handler) http.Handler { return chimw.Heartbeat(path) }

// CORSOptions is a narrow surface over go-chi/cors
type CORSOptions struct {
	AllowedOrigins []string
	AllowedHeaders []string
	MaxAge         int
}

// CORS wraps go-chi/cors for a read only API
func CORS(o CORSOptions) func(http.Handler) http.Handler {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: o.AllowedOrigins,
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, []string{
			"Accept",
			"Accept-Language",
			RequestIDHeader,
		}),
		ExposedHeaders: []string{RequestIDHeader, "Content-Language"},
		MaxAge:         o.MaxAge,
	})
}

// DefaultsOptions configures the standard chain
type DefaultsOptions struct {
	Slow        time.Duration
	Timeout     time.Duration
	CORSOrigins []string
}

// Defaults is the chain every API route runs behind, outermost first
// heartbeats are answered before request ids or access logs are touched
func Defaults(n Negotiator, o DefaultsOptions) []func(http.Handler) http.Handler {
	chain := []func(http.Handler) http.Handler{
		Heartbeat(PingPath),
		RealIP(),
		RequestID,
		Locale(n),
		AccessLogZerolog(AccessLogOptions{Slow: o.Slow}),
		RecoverJSON,
	}
	if len(o.CORSOrigins) > 0 {
		chain = append(chain, CORS(CORSOptions{AllowedOrigins: o.CORSOrigins}))
	}
	if o.Timeout > 0 {
		chain = append(chain, Timeout(o.Timeout))
	}
	return append(chain, NoCache())
}
