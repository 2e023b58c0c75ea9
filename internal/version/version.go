package version

import "fmt"

// Set via -ldflags at build time.
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

// GetVersionInfo returns the formatted version string.
func GetVersionInfo() string {
	return fmt.Sprintf("mongouri version %s (commit: %s, built: %s)\n", Version, GitCommit, BuildDate)
}
