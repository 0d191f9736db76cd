package middleware

import (
	"net/http"
	"strings"

	"reltime/internal/platform/logger"
	pnet "reltime/internal/platform/net"
)

// LocaleParam is the query parameter that overrides Accept-Language
const LocaleParam = "locale"

// Negotiator picks a supported locale from Accept-Language style inputs
type Negotiator interface {
	Match(accept ...string) string
}

// Locale negotiates the response locale once per request: ?locale= first,
// then Accept-Language, then the negotiator's fallback
func Locale(n Negotiator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := strings.TrimSpace(r.URL.Query().Get(LocaleParam))
			loc := n.Match(q, r.Header.Get("Accept-Language"))

			ctx := r.Context()
			reqID := pnet.RequestID(ctx)
			ctx = pnet.WithRequest(ctx, "", loc)
			ctx = logger.WithRequest(ctx, reqID, loc)

			w.Header().Set("Content-Language", loc)
			w.Header().Add("Vary", "Accept-Language")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
