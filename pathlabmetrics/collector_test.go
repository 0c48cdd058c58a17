package pathlabmetrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathlab/core"
	"pathlab/pathlabmetrics"
)

func TestCollector_ImplementsPrometheusCollector(t *testing.T) {
	var _ prometheus.Collector = pathlabmetrics.NewCollector("pathlab", "bench")
}

func TestCollector_ObserveAccumulatesAcrossCalls(t *testing.T) {
	c := pathlabmetrics.NewCollector("pathlab", "bench")
	c.Observe("heap", core.PQMetrics{Pushes: 3, Pops: 2}, core.DijkstraMetrics{Settled: 2})
	c.Observe("heap", core.PQMetrics{Pushes: 5, Pops: 4}, core.DijkstraMetrics{Settled: 4})

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))

	got, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range got {
		if mf.GetName() == "pathlab_bench_pq_pushes_total" {
			found = true
			require.Len(t, mf.Metric, 1)
			assert.Equal(t, float64(8), mf.Metric[0].GetCounter().GetValue())
		}
	}
	assert.True(t, found, "expected pathlab_bench_pq_pushes_total to be registered")
}

func TestCollector_LabelsByVariant(t *testing.T) {
	c := pathlabmetrics.NewCollector("pathlab", "bench")
	c.Observe("heap", core.PQMetrics{Pushes: 1}, core.DijkstraMetrics{})
	c.Observe("bucket", core.PQMetrics{Pushes: 2}, core.DijkstraMetrics{})

	count := testutil.CollectAndCount(c, "pathlab_bench_pq_pushes_total")
	assert.Equal(t, 2, count)
}

func TestCollector_CasesTotalCountsObserveCalls(t *testing.T) {
	c := pathlabmetrics.NewCollector("pathlab", "bench")
	c.Observe("stoc", core.PQMetrics{}, core.DijkstraMetrics{})
	c.Observe("stoc", core.PQMetrics{}, core.DijkstraMetrics{})
	c.Observe("stoc", core.PQMetrics{}, core.DijkstraMetrics{})

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))
	got, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range got {
		if mf.GetName() == "pathlab_bench_cases_total" {
			require.Len(t, mf.Metric, 1)
			assert.Equal(t, float64(3), mf.Metric[0].GetCounter().GetValue())
		}
	}
}
