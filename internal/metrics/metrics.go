// Package metrics exposes Prometheus instruments for searches and builds.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/wordladder/search"
)

const namespace = "wordladder"

// Search result label values.
const (
	ResultFound   = "found"
	ResultNoRoute = "no_route"
	ResultUnknown = "unknown_word"
)

// Build result label values.
const (
	BuildOK      = "ok"
	BuildSkipped = "skipped"
	BuildFailed  = "failed"
)

// Metrics holds every instrument. A nil *Metrics records nothing.
type Metrics struct {
	searches      *prometheus.CounterVec
	nodesExplored *prometheus.HistogramVec
	searchSeconds *prometheus.HistogramVec
	builds        *prometheus.CounterVec
	buildSeconds  prometheus.Histogram
	graphEdges    *prometheus.GaugeVec
	graphNodes    *prometheus.GaugeVec
}

// New registers the instruments with reg. Passing prometheus.DefaultRegisterer
// exposes them on the default /metrics handler; tests pass a fresh registry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "total",
			Help:      "Path searches by algorithm and outcome",
		}, []string{"algorithm", "result"}),

		nodesExplored: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "nodes_explored",
			Help:      "Distinct words expanded per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 9),
		}, []string{"algorithm"}),

		searchSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Path search latency in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"algorithm"}),

		builds: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "build",
			Name:      "total",
			Help:      "Graph builds by outcome",
		}, []string{"result"}),

		buildSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "build",
			Name:      "duration_seconds",
			Help:      "Graph build-and-persist time in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		}),

		graphEdges: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "graph",
			Name:      "edges",
			Help:      "Undirected edges of the loaded graph per word length",
		}, []string{"length"}),

		graphNodes: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "graph",
			Name:      "nodes",
			Help:      "Words of the loaded graph per word length",
		}, []string{"length"}),
	}
}

// ObserveSearch records one FindPath call. known reports whether both
// endpoints were in the graph.
func (m *Metrics) ObserveSearch(path search.Path, stats search.Stats, known bool) {
	if m == nil {
		return
	}
	result := ResultFound
	switch {
	case !known:
		result = ResultUnknown
	case !path.Found():
		result = ResultNoRoute
	}
	algo := stats.Algorithm.String()
	m.searches.WithLabelValues(algo, result).Inc()
	if known {
		m.nodesExplored.WithLabelValues(algo).Observe(float64(stats.NodesExplored))
		m.searchSeconds.WithLabelValues(algo).Observe(stats.Elapsed.Seconds())
	}
}

// ObserveBuild records a build outcome.
func (m *Metrics) ObserveBuild(result string, d time.Duration) {
	if m == nil {
		return
	}
	m.builds.WithLabelValues(result).Inc()
	if result == BuildOK {
		m.buildSeconds.Observe(d.Seconds())
	}
}

// SetGraph publishes the size of a loaded graph.
func (m *Metrics) SetGraph(wordLength, nodes, edges int) {
	if m == nil {
		return
	}
	l := strconv.Itoa(wordLength)
	m.graphNodes.WithLabelValues(l).Set(float64(nodes))
	m.graphEdges.WithLabelValues(l).Set(float64(edges))
}
