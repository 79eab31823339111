// File: graph.go
// Role: Read-only query API of Graph.
// Determinism:
//   - Words() and Neighbors() return sorted slices.
// Concurrency:
//   - No locks: a Graph is immutable once constructed.

package wordgraph

import "fmt"

// Metadata returns the graph summary.
func (g *Graph) Metadata() Metadata { return g.meta }

// MinCost returns the cheapest edge cost, or 0 for a graph without edges.
func (g *Graph) MinCost() float64 { return g.minC }

// WordLength returns the common length of all words.
func (g *Graph) WordLength() int { return g.meta.WordLength }

// Len returns the number of words.
func (g *Graph) Len() int { return len(g.words) }

// Words returns a copy of the sorted word list.
// Complexity: O(N).
func (g *Graph) Words() []string {
	out := make([]string, len(g.words))
	copy(out, g.words)

	return out
}

// Has reports whether w is a vertex of the graph.
// Complexity: O(1).
func (g *Graph) Has(w string) bool {
	_, ok := g.adj[w]

	return ok
}

// Neighbors returns the neighbours of w in ascending order, or nil if w is
// unknown or isolated. The slice is shared; callers must not modify it.
// Complexity: O(1).
func (g *Graph) Neighbors(w string) []string {
	return g.nbrs[w]
}

// Degree returns the number of neighbours of w.
func (g *Graph) Degree(w string) int {
	return len(g.adj[w])
}

// Cost returns the edge cost between a and b and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Cost(a, b string) (float64, bool) {
	c, ok := g.adj[a][b]

	return c, ok
}

// Adjacency returns a copy of the neighbour→cost map of w (nil if unknown).
// Complexity: O(deg(w)).
func (g *Graph) Adjacency(w string) map[string]float64 {
	m, ok := g.adj[w]
	if !ok {
		return nil
	}
	out := make(map[string]float64, len(m))
	for n, c := range m {
		out[n] = c
	}

	return out
}

// EachEdge calls fn once per undirected edge with a < b, in ascending order
// of a then b. Iteration stops early if fn returns false.
// Complexity: O(N + E).
func (g *Graph) EachEdge(fn func(a, b string, c float64) bool) {
	for _, a := range g.words {
		for _, b := range g.nbrs[a] {
			if a < b && !fn(a, b, g.adj[a][b]) {
				return
			}
		}
	}
}

// PathCost sums edge costs along path. A path of zero or one word costs 0.
//
// Errors:
//   - ErrUnknownWord if a word is not in the graph.
//   - ErrNotAdjacent if two consecutive words are not joined by an edge.
func (g *Graph) PathCost(path []string) (float64, error) {
	if len(path) == 1 && !g.Has(path[0]) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWord, path[0])
	}
	total := 0.0
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		if !g.Has(a) {
			return 0, fmt.Errorf("%w: %q", ErrUnknownWord, a)
		}
		c, ok := g.adj[a][b]
		if !ok {
			if !g.Has(b) {
				return 0, fmt.Errorf("%w: %q", ErrUnknownWord, b)
			}
			return 0, fmt.Errorf("%w: %q–%q", ErrNotAdjacent, a, b)
		}
		total += c
	}

	return total, nil
}
