package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocsPath is where the swagger UI is mounted
const DocsPath = "/docs"

// MountSwagger mounts the swagger UI and its JSON spec under /docs if enabled by caller
func MountSwagger(r Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(DocsPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, DocsPath+"/", http.StatusPermanentRedirect)
	})
	r.Get(DocsPath+"/doc.json", serveDocJSON)
	r.Handle(DocsPath+"/*", httpSwagger.Handler(
		httpSwagger.URL(DocsPath+"/doc.json"),
	))
}

func serveDocJSON(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(docReader()))
}
