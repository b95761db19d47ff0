// Package version holds the build version, overridable at link time via
// -ldflags "-X github.com/codecoder-dev/codecoder/pkg/version.Version=...".
package version

// Version is the build version string.
var Version = "dev"
