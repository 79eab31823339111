package search

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for finder construction.
var (
	// ErrNilGraph is returned when New receives a nil graph.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrUnknownAlgorithm is returned for an algorithm tag or value that is not BFS, UCS or A*.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Algorithm selects the frontier discipline.
type Algorithm int

const (
	// BFS expands in insertion order.
	BFS Algorithm = iota + 1
	// UCS expands the lowest accumulated cost first.
	UCS
	// AStar expands the lowest cost-plus-heuristic first. The heuristic is
	// the Hamming distance to the target, scaled by the cheapest edge when
	// that is below 1.
	AStar
)

// Algorithms lists every strategy in presentation order.
var Algorithms = []Algorithm{BFS, UCS, AStar}

// String returns the display tag: "BFS", "UCS" or "A*".
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case UCS:
		return "UCS"
	case AStar:
		return "A*"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Valid reports whether a is one of the defined strategies.
func (a Algorithm) Valid() bool {
	return a == BFS || a == UCS || a == AStar
}

// ParseAlgorithm maps a tag to an Algorithm, ignoring case. "astar" and
// "a-star" are accepted as spellings of "A*".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "ucs":
		return UCS, nil
	case "a*", "astar", "a-star":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// MarshalText encodes a as its tag. The zero Algorithm encodes as "".
func (a Algorithm) MarshalText() ([]byte, error) {
	if a == 0 {
		return []byte{}, nil
	}
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText decodes a tag accepted by ParseAlgorithm, or "" as the
// zero Algorithm.
func (a *Algorithm) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*a = 0
		return nil
	}
	v, err := ParseAlgorithm(string(b))
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// Path is an ordered word sequence from start to target inclusive. An empty
// Path means no route was found.
type Path []string

// Edges returns the number of steps in p.
func (p Path) Edges() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Found reports whether p is a route.
func (p Path) Found() bool { return len(p) > 0 }

// Stats describes one FindPath call.
type Stats struct {
	Algorithm     Algorithm     `json:"algorithm"`
	NodesExplored int           `json:"nodes_explored"`
	PathLength    int           `json:"path_length"`
	TotalCost     float64       `json:"total_cost"`
	Elapsed       time.Duration `json:"elapsed_ns"`
}

// Report pairs a strategy with its result, as produced by Compare.
type Report struct {
	Algorithm Algorithm `json:"algorithm"`
	Path      Path      `json:"path"`
	Stats     Stats     `json:"stats"`
}

// Option configures a Finder.
type Option func(*Options)

// Options holds Finder parameters.
type Options struct {
	// OnExpand is called once per counted frontier pop with the expanded word
	// and its accumulated cost (edge count for BFS).
	OnExpand func(word string, g float64)
}

// DefaultOptions returns Options with a no-op expansion hook.
func DefaultOptions() Options {
	return Options{OnExpand: func(string, float64) {}}
}

// WithOnExpand registers an expansion hook. A nil fn is ignored.
func WithOnExpand(fn func(word string, g float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
