package http_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reltime/internal/platform/config"
	phttp "reltime/internal/platform/net/http"
)

func TestNewServer_DefaultsAndMux(t *testing.T) {
	t.Setenv("API_PORT", "")
	srv := phttp.NewServer(config.New())
	if srv.Addr() != ":4000" {
		t.Fatalf("addr = %q, want :4000", srv.Addr())
	}
	r := srv.Router()
	if r == nil || r.Mux() == nil {
		t.Fatalf("router or mux is nil")
	}

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "pong" {
		t.Fatalf("bad response: %d %q", rec.Code, rec.Body.String())
	}
}

func TestNewServer_PrefixedPort(t *testing.T) {
	t.Setenv("RELTIME_API_PORT", "127.0.0.1:4999")
	srv := phttp.NewServer(config.New().Prefix("RELTIME_"))
	if srv.Addr() != "127.0.0.1:4999" {
		t.Fatalf("addr = %q", srv.Addr())
	}
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := l.Addr().String()
	_ = l.Close()

	t.Setenv("API_PORT", addr)
	srv := phttp.NewServer(config.New())
	srv.Router().Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = http.Get("http://" + addr + "/ping")
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("server never came up: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if string(body) != "pong" {
		t.Fatalf("body = %q", body)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestServer_RunReportsListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()

	t.Setenv("API_PORT", l.Addr().String())
	srv := phttp.NewServer(config.New())
	if err := srv.Run(context.Background()); err == nil {
		t.Fatalf("expected address in use error")
	}
}
