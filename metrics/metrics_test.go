package metrics_test

import (
	"testing"

	"github.com/ldbc/knowsgen/metrics"
	"github.com/ldbc/knowsgen/stats"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestCollector_ObserveUpdatesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	c.Observe(&stats.Stats{
		NumCoreCoreEdges:      5,
		NumCorePeripheryEdges: 3,
		NumCoreExternalEdges:  2,
		NumMisses:             1,
		Iterations:            4,
		FinalCC:               0.08,
	})

	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}
