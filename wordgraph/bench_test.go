package wordgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wordladder/wordgraph"
)

// BenchmarkBuild measures pattern-bucket construction on a dense 4-letter dictionary.
func BenchmarkBuild(b *testing.B) {
	words := randomWords(rand.New(rand.NewSource(1)), 4, "abcdefghij", 3000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := wordgraph.Build(words); err != nil {
			b.Fatal(err)
		}
	}
}
