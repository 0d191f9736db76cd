// Package api provides the HTTP API for the application
package api

import (
	"time"

	"reltime/internal/core/reltime"
	"reltime/internal/platform/config"
	"reltime/internal/platform/i18n"
	phttp "reltime/internal/platform/net/http"
	"reltime/internal/platform/net/middleware"
	pstrings "reltime/internal/platform/strings"

	rthttp "reltime/internal/services/reltime/http"
)

// ServiceName identifies the API in logs, health and version payloads
const ServiceName = "reltime-api"

// Options are the API options
type Options struct {
	Config    config.Conf
	Catalog   *i18n.Catalog
	StartedAt time.Time
	// Now overrides the clock used when `to` is omitted
	Now func() time.Time
}

// DefaultRoot is where the formatter routes live unless ROOT overrides it
const DefaultRoot = "/v1/reltime"

// Mount mounts the API service onto the given router
// the standard middleware chain runs in front of every route, including
// unmatched ones, so Mount must be called before anything else is registered
func Mount(r phttp.Router, opt Options) {
	if opt.StartedAt.IsZero() {
		opt.StartedAt = time.Now()
	}
	cat := opt.Catalog

	r.Use(middleware.Defaults(cat, middleware.DefaultsOptions{
		Slow:        opt.Config.MayDuration("SLOW", 500*time.Millisecond),
		Timeout:     opt.Config.MayDuration("REQUEST_TIMEOUT", 5*time.Second),
		CORSOrigins: opt.Config.MayCSV("CORS_ORIGINS", nil),
	})...)

	rthttp.RegisterMeta(r, rthttp.MetaDeps{
		ServiceName: ServiceName,
		StartedAt:   opt.StartedAt,
		Locales:     cat.Locales(),
	})
	phttp.MountSwagger(r, opt.Config.MayBool("DOCS", false))

	root := pstrings.MustPrefix(opt.Config.MayString("ROOT", DefaultRoot))
	r.Route(root, func(v1 phttp.Router) {
		rthttp.Register(v1, rthttp.Deps{
			Translator: func(locale string) reltime.Translator { return cat.For(locale) },
			Now:        opt.Now,
		})
	})
}
