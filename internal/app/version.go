package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/habitlog-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for startup logs.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

// registerBuildInfo exposes the build metadata as a constant gauge.
func registerBuildInfo(reg prometheus.Registerer) {
	info := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "habitlog_build_info",
		Help: "Build metadata of the running binary; always 1.",
	}, []string{"version", "commit", "built"})
	info.WithLabelValues(Version, Commit, BuildTime).Set(1)
	reg.MustRegister(info)
}
