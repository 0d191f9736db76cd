// @title         Reltime API
// @version       0.1.0
// @description   Localized relative time phrases
// @BasePath      /v1/reltime

// Command reltime-api serves localized relative time phrases over HTTP
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"reltime/internal/platform/config"
	"reltime/internal/platform/i18n"
	"reltime/internal/platform/logger"
	phttp "reltime/internal/platform/net/http"

	"reltime/internal/services/api"
)

func main() {
	// service-scoped config (RELTIME_*)
	cfg := config.New().Prefix("RELTIME_")

	// bring up logging early
	l := logger.Get()
	started := time.Now()

	cat, err := i18n.FromConfig(cfg)
	if err != nil {
		l.Panic().Err(err).Msg("catalog load failed")
	}
	l.Info().Strs("locales", cat.Locales()).Str("fallback", cat.Fallback()).Msg("catalog ready")

	// http server (reads RELTIME_API_PORT)
	srv := phttp.NewServer(cfg)
	api.Mount(srv.Router(), api.Options{
		Config:    cfg,
		Catalog:   cat,
		StartedAt: started,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
