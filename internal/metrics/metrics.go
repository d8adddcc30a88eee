package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records trigger outcomes. A nil *Metrics is a no-op.
type Metrics struct {
	invocations  *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	copiesUpdate prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "boujee",
			Name:      "trigger_invocations_total",
			Help:      "Trigger invocations by trigger and outcome.",
		}, []string{"trigger", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "boujee",
			Name:      "trigger_duration_seconds",
			Help:      "Time spent handling one trigger invocation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"trigger"}),
		copiesUpdate: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "boujee",
			Name:      "profile_copies_updated_total",
			Help:      "Denormalized profile copies rewritten by image propagation.",
		}),
	}
	reg.MustRegister(m.invocations, m.duration, m.copiesUpdate)
	return m
}

// Observe counts one finished invocation.
func (m *Metrics) Observe(trigger, outcome string, started time.Time) {
	if m == nil {
		return
	}
	m.invocations.WithLabelValues(trigger, outcome).Inc()
	m.duration.WithLabelValues(trigger).Observe(time.Since(started).Seconds())
}

func (m *Metrics) CopiesUpdated(n int) {
	if m == nil {
		return
	}
	m.copiesUpdate.Add(float64(n))
}
