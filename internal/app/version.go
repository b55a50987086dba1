package app

import "fmt"

// Build metadata, stamped at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/centralring-backend/internal/app.Version=v1.4.0 \
//	  -X github.com/heartmarshall/centralring-backend/internal/app.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version string reported by /health, the startup log
// and catalogctl version.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
