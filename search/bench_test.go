package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wordladder/search"
	"github.com/katalvlaran/wordladder/wordgraph"
)

// BenchmarkFindPath measures each strategy on a dense random 4-letter graph.
func BenchmarkFindPath(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	g, err := wordgraph.Build(randomWords(rng, 4, "abcdefghilmnoprst", 3000))
	if err != nil {
		b.Fatal(err)
	}
	ws := g.Words()
	queries := make([][2]string, 64)
	for i := range queries {
		queries[i] = [2]string{ws[rng.Intn(len(ws))], ws[rng.Intn(len(ws))]}
	}

	for _, algo := range search.Algorithms {
		f, _ := search.New(g, algo)
		b.Run(algo.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				q := queries[i%len(queries)]
				_, _ = f.FindPath(q[0], q[1])
			}
		})
	}
}
