package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNopMetrics(t *testing.T) {
	m := NewNop()
	require.NotNil(t, m)

	// All methods must be safe no-ops.
	m.RecordObservations(100)
	m.RecordMerge(5)
	m.RecordExport(5, 0.01)
	m.RecordShardCompleted(1000, 0.5)
	m.RecordReduce(4, 0.1)
}

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheus(reg, "recal_test")

	m.RecordObservations(100)
	m.RecordMerge(5)
	m.RecordExport(5, 0.01)
	m.RecordShardCompleted(1000, 0.5)
	m.RecordReduce(4, 0.1)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	require.True(t, names["recal_test_table_observations_total"])
	require.True(t, names["recal_test_table_merges_total"])
	require.True(t, names["recal_test_pipeline_shard_latency_seconds"])
}

func TestPrometheusCollector_Defaults(t *testing.T) {
	m := NewPrometheus(prometheus.NewRegistry(), "")
	require.Equal(t, "recal", m.namespace)
}
