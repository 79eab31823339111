package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/katalvlaran/wordladder/wordgraph"
)

// Sentinel errors shared by all backends.
var (
	// ErrNotBuilt indicates no graph is persisted for the requested word length.
	ErrNotBuilt = errors.New("store: graph not built")

	// ErrCorrupt indicates a persisted graph that cannot be decoded or validated.
	ErrCorrupt = errors.New("store: persisted graph is corrupt")

	// ErrNilGraph indicates Save was called with a nil graph.
	ErrNilGraph = errors.New("store: graph is nil")

	// ErrBadLength indicates a non-positive word length.
	ErrBadLength = errors.New("store: word length must be positive")
)

// Store persists and loads graphs keyed by word length.
type Store interface {
	// Save persists g, replacing any graph of the same word length.
	Save(ctx context.Context, g *wordgraph.Graph) error

	// Load returns the graph for wordLength, ErrNotBuilt if absent or
	// ErrCorrupt if the record is unusable.
	Load(ctx context.Context, wordLength int) (*wordgraph.Graph, error)

	// Exists reports whether a record for wordLength is present. It does not
	// decode the record.
	Exists(ctx context.Context, wordLength int) (bool, error)

	// Lengths lists the word lengths with a persisted record, ascending.
	Lengths(ctx context.Context) ([]int, error)
}

// Record is the persisted representation of a graph.
type Record struct {
	Metadata wordgraph.Metadata            `json:"metadata"`
	Words    []string                      `json:"words"`
	Graph    map[string]map[string]float64 `json:"graph"`
}

// NewRecord snapshots g into a Record.
// Complexity: O(N + E).
func NewRecord(g *wordgraph.Graph) Record {
	words := g.Words()
	adj := make(map[string]map[string]float64, len(words))
	for _, w := range words {
		if g.Degree(w) == 0 {
			continue
		}
		adj[w] = g.Adjacency(w)
	}

	return Record{Metadata: g.Metadata(), Words: words, Graph: adj}
}

// ToGraph rebuilds and validates the graph held by r.
func (r Record) ToGraph() (*wordgraph.Graph, error) {
	g, err := wordgraph.FromAdjacency(r.Metadata, r.Words, r.Graph)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	return g, nil
}

// Marshal encodes g as indented JSON.
func Marshal(g *wordgraph.Graph) ([]byte, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	data, err := json.MarshalIndent(NewRecord(g), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("store: encode graph: %w", err)
	}

	return data, nil
}

// Unmarshal decodes data into a validated graph. wantLength, when positive,
// must match the record's word length. Every failure wraps ErrCorrupt.
func Unmarshal(data []byte, wantLength int) (*wordgraph.Graph, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if wantLength > 0 && r.Metadata.WordLength != wantLength {
		return nil, fmt.Errorf("%w: record holds %d-letter words, want %d", ErrCorrupt, r.Metadata.WordLength, wantLength)
	}

	return r.ToGraph()
}

func checkLength(l int) error {
	if l <= 0 {
		return fmt.Errorf("%w: %d", ErrBadLength, l)
	}

	return nil
}
