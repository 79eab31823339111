// File: validate.go
// Role: Structural invariant checks and reconstruction from decoded parts.

package wordgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wordladder/cost"
)

// FromAdjacency rebuilds a Graph from persisted parts (metadata, word list,
// adjacency). Words missing from adj are treated as isolated. The result is
// fully validated and its derived metadata must equal meta.
//
// Errors:
//   - ErrInvalidGraph wrapping the first violated invariant.
//
// Complexity: O(N log N + E).
func FromAdjacency(meta Metadata, words []string, adj map[string]map[string]float64) (*Graph, error) {
	sorted, err := checkWords(words)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}

	own := make(map[string]map[string]float64, len(sorted))
	for _, w := range sorted {
		own[w] = make(map[string]float64, len(adj[w]))
	}
	for w, m := range adj {
		dst, ok := own[w]
		if !ok {
			return nil, fmt.Errorf("%w: adjacency for %q which is not in the word list", ErrInvalidGraph, w)
		}
		for n, c := range m {
			dst[n] = c
		}
	}

	g := newGraph(len(sorted[0]), sorted, own)
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if g.meta != meta {
		return nil, fmt.Errorf("%w: metadata %+v does not match graph %+v", ErrInvalidGraph, meta, g.meta)
	}

	return g, nil
}

// Validate re-checks every structural invariant:
//
//  1. every neighbour is a known word other than the vertex itself;
//  2. costs are finite and strictly positive;
//  3. adj[a][b] == adj[b][a] (symmetry, exact);
//  4. a and b have the word length and differ in exactly one position;
//  5. Σ|adj| is even and EdgeCount == Σ|adj| / 2; NodeCount == |words|.
//
// Complexity: O(N + E·L).
func (g *Graph) Validate() error {
	L := g.meta.WordLength
	total := 0
	for a, m := range g.adj {
		if len(a) != L {
			return fmt.Errorf("%w: %q has length %d, want %d", ErrInvalidGraph, a, len(a), L)
		}
		for b, c := range m {
			if _, ok := g.adj[b]; !ok {
				return fmt.Errorf("%w: %q links to unknown word %q", ErrInvalidGraph, a, b)
			}
			if a == b {
				return fmt.Errorf("%w: self-loop on %q", ErrInvalidGraph, a)
			}
			if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
				return fmt.Errorf("%w: edge %q–%q has cost %v", ErrInvalidGraph, a, b, c)
			}
			if back, ok := g.adj[b][a]; !ok || back != c {
				return fmt.Errorf("%w: edge %q–%q is not symmetric", ErrInvalidGraph, a, b)
			}
			if cost.Hamming(a, b) != 1 || len(b) != L {
				return fmt.Errorf("%w: %q and %q are not one letter apart", ErrInvalidGraph, a, b)
			}
		}
		total += len(m)
	}
	if total%2 != 0 {
		return fmt.Errorf("%w: odd adjacency total %d", ErrInvalidGraph, total)
	}
	if g.meta.EdgeCount != total/2 {
		return fmt.Errorf("%w: edge count %d, adjacency says %d", ErrInvalidGraph, g.meta.EdgeCount, total/2)
	}
	if g.meta.NodeCount != len(g.words) || len(g.adj) != len(g.words) {
		return fmt.Errorf("%w: node count %d for %d words", ErrInvalidGraph, g.meta.NodeCount, len(g.words))
	}

	return nil
}
