//go:build !swag

package http

// docReader (no-swag build) serves a skeleton so the UI still loads
var docReader = func() string {
	return `{"swagger":"2.0","info":{"title":"Reltime API","version":"0.1.0"},"basePath":"/v1/reltime","paths":{}}`
}
