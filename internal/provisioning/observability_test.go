package provisioning

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObservePhase(t *testing.T) {
	t.Parallel()
	m := NewMetrics(nil)

	m.observePhase("network", "subnets", nil, 2*time.Second)
	m.observePhase("network", "subnets", nil, time.Second)
	m.observePhase("network", "subnets", assert.AnError, time.Second)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.phasesTotal.WithLabelValues("network", "subnets", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.phasesTotal.WithLabelValues("network", "subnets", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.phaseDuration))
}

func TestMetrics_RecordShare(t *testing.T) {
	t.Parallel()
	m := NewMetrics(nil)

	m.recordShare(ShareReused)
	m.recordShare(ShareCreated)
	m.recordShare(ShareReused)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.sharesTotal.WithLabelValues("reused")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.sharesTotal.WithLabelValues("created")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	t.Parallel()
	var m *Metrics

	assert.NotPanics(t, func() {
		m.observePhase("network", "subnets", nil, time.Second)
		m.recordShare(ShareCreated)
	})
}

func TestNewMetrics_Registers(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewPedanticRegistry()
	m := NewMetrics(reg)
	m.recordShare(ShareAttached)
	m.observePhase("storage", "mount target", nil, time.Second)

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"srmkit_provisioning_phases_total",
		"srmkit_provisioning_phase_duration_seconds",
		"srmkit_provisioning_file_shares_total",
	}, names)
}
