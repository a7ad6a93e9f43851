// Package version exposes build metadata injected at link time.
package version

// Set via -ldflags at release build time; defaults apply to source builds.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
