// Package version holds the build version, overridden via -ldflags.
package version

// Version is set at build time with -ldflags "-X github.com/NielsdaWheelz/stackup/internal/version.Version=...".
var Version = "dev"
