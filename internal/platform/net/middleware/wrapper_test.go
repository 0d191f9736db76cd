package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pnet "reltime/internal/platform/net"
	"reltime/internal/platform/net/middleware"
)

// staticNegotiator returns a fixed locale and records what it was asked
type staticNegotiator struct {
	locale string
	got    []string
}

func (s *staticNegotiator) Match(accept ...string) string {
	s.got = append([]string(nil), accept...)
	return s.locale
}

func chain(h http.Handler, mws []func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func TestWrappers_ReturnHandlers(t *testing.T) {
	if middleware.RealIP() == nil ||
		middleware.Timeout(time.Second) == nil ||
		middleware.NoCache() == nil ||
		middleware.Heartbeat("/healthz") == nil {
		t.Fatal("expected non nil handlers from wrappers")
	}
}

func TestCORS_PreflightForReadOnlyAPI(t *testing.T) {
	cors := middleware.CORS(middleware.CORSOptions{AllowedOrigins: []string{"https://example.com"}})
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	req.Header.Set("Access-Control-Request-Headers", "Accept-Language")

	rr := httptest.NewRecorder()
	cors(h).ServeHTTP(rr, req)

	if rr.Code != 200 && rr.Code != 204 {
		t.Fatalf("expected 200 or 204 got %d", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "https://example.com" {
		t.Fatalf("allow origin = %q", rr.Header().Get("Access-Control-Allow-Origin"))
	}
	if rr.Header().Get("Access-Control-Allow-Headers") == "" {
		t.Fatal("expected Access-Control-Allow-Headers to be set")
	}
}

func TestDefaults_BundleRuns(t *testing.T) {
	neg := &staticNegotiator{locale: "de"}
	mws := middleware.Defaults(neg, middleware.DefaultsOptions{
		Slow:        time.Second,
		Timeout:     time.Second,
		CORSOrigins: []string{"*"},
	})

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if pnet.RequestID(r.Context()) == "" {
			t.Errorf("expected request id in context")
		}
		if got := pnet.Locale(r.Context()); got != "de" {
			t.Errorf("locale = %q, want de", got)
		}
		if _, ok := r.Context().Deadline(); !ok {
			t.Errorf("expected Timeout to set a deadline")
		}
		w.WriteHeader(200)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "de-AT")
	rr := httptest.NewRecorder()
	chain(h, mws).ServeHTTP(rr, req)

	if rr.Code != 200 {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
	if rr.Header().Get("Cache-Control") == "" {
		t.Fatal("expected Cache-Control to be set by NoCache")
	}
	if rr.Header().Get(middleware.RequestIDHeader) == "" || rr.Header().Get("Content-Language") != "de" {
		t.Fatalf("headers = %v", rr.Header())
	}
}

func TestDefaults_Heartbeat(t *testing.T) {
	mws := middleware.Defaults(&staticNegotiator{locale: "en"}, middleware.DefaultsOptions{})
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("heartbeat reached the handler: %s", r.URL.Path)
	})

	rr := httptest.NewRecorder()
	chain(h, mws).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, middleware.PingPath, nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "." {
		t.Fatalf("ping => %d %q", rr.Code, rr.Body.String())
	}
	if rr.Header().Get(middleware.RequestIDHeader) != "" {
		t.Fatalf("heartbeat should short-circuit before request ids: %v", rr.Header())
	}
}

func TestDefaults_OptionalPieces(t *testing.T) {
	bare := middleware.Defaults(&staticNegotiator{locale: "en"}, middleware.DefaultsOptions{})
	full := middleware.Defaults(&staticNegotiator{locale: "en"}, middleware.DefaultsOptions{
		Timeout:     time.Second,
		CORSOrigins: []string{"*"},
	})
	if len(full) != len(bare)+2 {
		t.Fatalf("len(full)=%d len(bare)=%d", len(full), len(bare))
	}
}
