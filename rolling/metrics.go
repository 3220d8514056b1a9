package rolling

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records rolling scan outcomes to Prometheus.
type Metrics struct {
	windows     *prometheus.CounterVec
	fitDuration prometheus.Histogram
}

// NewMetrics creates the rolling collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		windows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "goregress",
			Subsystem: "rolling",
			Name:      "windows_total",
			Help:      "Windows fitted, by outcome.",
		}, []string{"outcome"}),
		fitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "goregress",
			Subsystem: "rolling",
			Name:      "fit_seconds",
			Help:      "Time spent fitting a single window.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}
	for _, c := range []prometheus.Collector{m.windows, m.fitDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(err error, d time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "failed"
	}
	m.windows.WithLabelValues(outcome).Inc()
	m.fitDuration.Observe(d.Seconds())
}
