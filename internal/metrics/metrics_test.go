package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Observe("post_created", "sent", time.Now())
	m.Observe("post_created", "sent", time.Now())
	m.Observe("post_created", "skipped", time.Now())
	m.CopiesUpdated(3)

	require.Equal(t, 2.0, testutil.ToFloat64(m.invocations.WithLabelValues("post_created", "sent")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.invocations.WithLabelValues("post_created", "skipped")))
	require.Equal(t, 3.0, testutil.ToFloat64(m.copiesUpdate))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.Observe("user_updated", "noop", time.Now())
		m.CopiesUpdated(1)
	})
}
