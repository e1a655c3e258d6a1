package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldgssm/ldgssm/metrics"
)

func TestObserveUpdatesGauges(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	c.Observe(2, 3, 1.5, 4)

	m := &dto.Metric{}
	require.NoError(t, c.CurrentHND.Write(m))
	assert.InDelta(t, 1.5, m.GetGauge().GetValue(), 1e-9)
}
