package middleware

import (
	"net/http"

	"reltime/internal/platform/logger"
	pnet "reltime/internal/platform/net"

	"github.com/google/uuid"
)

// RequestIDHeader is read from requests and echoed on responses
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLen bounds ids accepted from clients
const maxRequestIDLen = 128

// RequestID propagates X-Request-ID or mints a uuid, storing it for chi,
// the net helpers and the logger
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		ctx := pnet.WithRequest(r.Context(), id, "")
		ctx = logger.WithRequest(ctx, id, "")
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
