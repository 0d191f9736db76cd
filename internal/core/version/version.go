// Package version provides build information stamped at link time
package version

// BuildInfo holds version information about a binary
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information for service
// Set via -ldflags "-X 'reltime/internal/core/version.version=v0.1.0'
// -X 'reltime/internal/core/version.commit=abcd' -X 'reltime/internal/core/version.date=2026-10-17'"
func Info(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
