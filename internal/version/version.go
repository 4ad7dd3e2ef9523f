// Package version provides build-time version information.
//
// Variables are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/njuettner/bitvavo-parqet/internal/version.Version=1.0.0 \
//	                   -X github.com/njuettner/bitvavo-parqet/internal/version.Commit=$(git rev-parse --short HEAD)" \
//	         ./cmd/exporter
package version

// Build-time variables (set via ldflags)
var (
	Version = "dev"
	Commit  = "unknown"
)

// String returns a formatted version string, e.g. "exporter 1.0.0 (a1b2c3d)".
func String() string {
	return "exporter " + Version + " (" + Commit + ")"
}
