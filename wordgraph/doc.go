// Package wordgraph builds and serves the weighted word-ladder graph: one
// vertex per dictionary word, one undirected edge between every two words
// that differ in exactly one letter position.
//
// What is inside:
//
//   - Build: turns a word list into a Graph using wildcard pattern buckets
//     instead of all-pairs comparison.
//   - Graph: an immutable adjacency structure (word → neighbour → cost) with
//     sorted, deterministic neighbour lists and O(1) membership tests.
//   - Metadata: word length, node count and undirected edge count, stored
//     next to the graph for sanity checks on load.
//   - Validate: re-checks every structural invariant (symmetry, edge count,
//     single-position differences), used by stores after decoding.
//   - Components: connected-component labelling via union-find.
//
// Pattern buckets:
//
// For each word of length L, Build emits L patterns by masking one position
// at a time ("cat" → "*at", "c*t", "ca*"). Words sharing a pattern differ
// exactly at the masked position, so every unordered pair inside a bucket is
// an edge and no other pair is. Work is O(N·L) bucket insertions plus
// O(Σ|bucket|²) pair emissions, near-linear for real dictionaries.
//
// Example:
//
//	g, err := wordgraph.Build([]string{"cat", "bat", "bad", "cot"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.Metadata().EdgeCount) // 3
//
// Thread safety:
//
//   - A Graph is never mutated after Build or FromAdjacency returns, so any
//     number of goroutines may read it concurrently without locks.
package wordgraph
