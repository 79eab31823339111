package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/internal/metrics"
	"github.com/katalvlaran/wordladder/search"
)

func TestObserveSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	stats := search.Stats{Algorithm: search.AStar, NodesExplored: 3, Elapsed: time.Millisecond}
	m.ObserveSearch(search.Path{"cat", "bat", "bad"}, stats, true)
	m.ObserveSearch(nil, stats, true)
	m.ObserveSearch(nil, search.Stats{Algorithm: search.BFS}, false)

	n, err := testutil.GatherAndCount(reg, "wordladder_search_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n, "one series per algorithm/result pair")

	n, err = testutil.GatherAndCount(reg, "wordladder_search_nodes_explored")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "unknown-word queries are not timed")
}

func TestObserveBuildAndGraph(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveBuild(metrics.BuildOK, 2*time.Second)
	m.ObserveBuild(metrics.BuildSkipped, 0)
	m.SetGraph(3, 4, 3)

	n, err := testutil.GatherAndCount(reg, "wordladder_build_total", "wordladder_graph_edges", "wordladder_graph_nodes")
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveSearch(nil, search.Stats{}, false)
		m.ObserveBuild(metrics.BuildFailed, 0)
		m.SetGraph(5, 1, 0)
	})
}
