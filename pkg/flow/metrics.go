package flow

import (
	"time"

	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

var parseDuration = prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
	Namespace: "archdiff",
	Subsystem: "flow",
	Name:      "parse_duration_seconds",
	Help:      "Duration of a flow parse in seconds, by winning dialect.",
	Buckets:   stdprometheus.DefBuckets,
}, []string{"dialect"})

func observeParse(start time.Time, dialect string) {
	parseDuration.With("dialect", dialect).Observe(time.Since(start).Seconds())
}
