// File: build.go
// Role: GraphBuilder. Pattern-bucket construction of the word-ladder graph.
// Determinism:
//   - Input is copied and sorted; output words are sorted asc.
//   - Edge costs depend only on the word pair, never on iteration order.

package wordgraph

import (
	"fmt"
	"sort"
)

// Build constructs a Graph over words.
//
// Implementation:
//   - Stage 1: Validate input (non-empty list, non-empty words, one length, no duplicates).
//   - Stage 2: Bucket every word under its L single-position wildcard patterns.
//   - Stage 3: For every bucket with ≥ 2 words, connect all unordered pairs,
//     pricing each edge once with Options.CostFn and recording it both ways.
//   - Stage 4: Derive sorted neighbour lists and Metadata.
//
// Errors:
//   - ErrNoWords, ErrEmptyWord, ErrMixedLength, ErrDuplicateWord.
//
// Complexity:
//   - Time O(N·L + Σ|bucket|²) plus O(N log N) for sorting, Space O(N·L + E).
func Build(words []string, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Validate and normalise ordering.
	sorted, err := checkWords(words)
	if err != nil {
		return nil, err
	}
	L := len(sorted[0])

	// 2) Wildcard buckets: pattern → words sharing it.
	buckets := make(map[string][]string, len(sorted)*L)
	buf := make([]byte, L)
	for _, w := range sorted {
		copy(buf, w)
		for i := 0; i < L; i++ {
			orig := buf[i]
			buf[i] = Wildcard
			p := string(buf)
			buckets[p] = append(buckets[p], w)
			buf[i] = orig
		}
	}

	// 3) Emit every pair inside each bucket.
	adj := make(map[string]map[string]float64, len(sorted))
	for _, w := range sorted {
		adj[w] = make(map[string]float64)
	}
	for _, bucket := range buckets {
		if len(bucket) < 2 {
			continue
		}
		for i := 0; i < len(bucket); i++ {
			for j := i + 1; j < len(bucket); j++ {
				a, b := bucket[i], bucket[j]
				c := o.CostFn(a, b)
				adj[a][b] = c
				adj[b][a] = c
			}
		}
	}

	// 4) Finalise.
	return newGraph(L, sorted, adj), nil
}

// checkWords returns a sorted copy of words or the first validation error.
func checkWords(words []string) ([]string, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Strings(sorted)

	L := -1
	for i, w := range sorted {
		if w == "" {
			return nil, ErrEmptyWord
		}
		if L < 0 {
			L = len(w)
		} else if len(w) != L {
			return nil, fmt.Errorf("%w: %q has length %d, want %d", ErrMixedLength, w, len(w), L)
		}
		if i > 0 && sorted[i-1] == w {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateWord, w)
		}
	}

	return sorted, nil
}

// newGraph wraps already-validated parts and derives neighbour lists and metadata.
// words must be sorted and every word must have an adj entry.
func newGraph(wordLength int, words []string, adj map[string]map[string]float64) *Graph {
	nbrs := make(map[string][]string, len(adj))
	total := 0
	minCost := 0.0
	for w, m := range adj {
		list := make([]string, 0, len(m))
		for n, c := range m {
			list = append(list, n)
			if minCost == 0 || c < minCost {
				minCost = c
			}
		}
		sort.Strings(list)
		nbrs[w] = list
		total += len(m)
	}

	return &Graph{
		meta: Metadata{
			WordLength: wordLength,
			NodeCount:  len(words),
			EdgeCount:  total / 2,
		},
		words: words,
		adj:   adj,
		nbrs:  nbrs,
		minC:  minCost,
	}
}
