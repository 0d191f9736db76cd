//go:build swag

package http

import docs "reltime/internal/services/api/docs"

// docReader serves the spec generated by `swag init -g cmd/reltime-api/main.go -o internal/services/api/docs`
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }
