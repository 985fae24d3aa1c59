package logger

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

var (
	levelCounter     *prometheus.CounterVec //nolint:gochecknoglobals
	levelCounterOnce sync.Once              //nolint:gochecknoglobals
)

// PrometheusHook counts log events per level, so an "error rate went up"
// alert needs no log scraping.
type PrometheusHook struct{}

// Run implements zerolog.Hook.
func (h PrometheusHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level != zerolog.NoLevel {
		levelCounter.WithLabelValues(level.String()).Inc()
	}
}

// NewPrometheusHook creates the hook. The counter registers once per
// process, repeated Init calls share it.
func NewPrometheusHook(serviceName string) PrometheusHook {
	levelCounterOnce.Do(func() {
		levelCounter = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "log_events_total",
				Help:        "Number of log events by level.",
				ConstLabels: prometheus.Labels{"service": serviceName},
			},
			[]string{"level"},
		)
	})

	return PrometheusHook{}
}
