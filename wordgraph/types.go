// File: types.go
// Role: Metadata, Graph, builder options and sentinel errors.

package wordgraph

import (
	"errors"

	"github.com/katalvlaran/wordladder/cost"
)

// Sentinel errors for graph construction and validation.
var (
	// ErrNoWords indicates an empty word list: no words available to build from.
	ErrNoWords = errors.New("wordgraph: no words available")

	// ErrEmptyWord indicates a blank entry in the word list.
	ErrEmptyWord = errors.New("wordgraph: empty word")

	// ErrMixedLength indicates words of different lengths in one list.
	ErrMixedLength = errors.New("wordgraph: words differ in length")

	// ErrDuplicateWord indicates the same word appears twice in the input.
	ErrDuplicateWord = errors.New("wordgraph: duplicate word")

	// ErrInvalidGraph indicates a structural invariant does not hold.
	ErrInvalidGraph = errors.New("wordgraph: invalid graph")

	// ErrUnknownWord indicates a word that is not a vertex of the graph.
	ErrUnknownWord = errors.New("wordgraph: unknown word")

	// ErrNotAdjacent indicates two consecutive path words are not joined by an edge.
	ErrNotAdjacent = errors.New("wordgraph: words are not adjacent")
)

// Wildcard is the placeholder written at the masked position of a pattern.
const Wildcard = '*'

// Metadata summarises a built graph. It is derived on build and persisted
// with the graph so loaders can sanity-check what they decoded.
type Metadata struct {
	WordLength int `json:"word_length"`
	NodeCount  int `json:"node_count"`
	EdgeCount  int `json:"edge_count"`
}

// Graph is an immutable weighted word-ladder graph.
//
// Every word of the word set has an adjacency entry; isolated words map to an
// empty neighbour set. adj is symmetric: adj[a][b] == adj[b][a].
type Graph struct {
	meta  Metadata
	words []string                      // sorted, distinct
	adj   map[string]map[string]float64 // word → neighbour → cost
	nbrs  map[string][]string           // word → neighbours sorted asc
	minC  float64                       // cheapest edge; 0 without edges
}

// Option configures Build.
type Option func(*Options)

// Options holds builder parameters.
type Options struct {
	// CostFn prices each edge. Defaults to cost.Default.
	CostFn cost.Fn
}

// DefaultOptions returns Options with the four-term substitution cost.
func DefaultOptions() Options {
	return Options{CostFn: cost.Default}
}

// WithCostFn overrides the edge cost function. A nil fn is ignored.
// Any strictly positive fn keeps A* optimal: the search scales its letter
// heuristic down to the cheapest edge when that is below 1.
func WithCostFn(fn cost.Fn) Option {
	return func(o *Options) {
		if fn != nil {
			o.CostFn = fn
		}
	}
}
