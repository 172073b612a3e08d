package compare

import (
	"time"

	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

var (
	runDuration = prometheus.NewHistogramFrom(stdprometheus.HistogramOpts{
		Namespace: "archdiff",
		Subsystem: "compare",
		Name:      "run_duration_seconds",
		Help:      "Duration of a full diff run in seconds.",
		Buckets:   stdprometheus.DefBuckets,
	}, []string{})
	itemCount = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Namespace: "archdiff",
		Subsystem: "compare",
		Name:      "items_total",
		Help:      "Diff items produced, by severity.",
	}, []string{"severity"})
)

func observeRun(start time.Time) {
	runDuration.Observe(time.Since(start).Seconds())
}

func observeItems(s Summary) {
	itemCount.With("severity", string(High)).Add(float64(s.High))
	itemCount.With("severity", string(Medium)).Add(float64(s.Medium))
	itemCount.With("severity", string(Low)).Add(float64(s.Low))
	itemCount.With("severity", string(Info)).Add(float64(s.Info))
}
