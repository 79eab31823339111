package search_test

import (
	"fmt"

	"github.com/katalvlaran/wordladder/search"
	"github.com/katalvlaran/wordladder/wordgraph"
)

// ExampleCompare runs all three strategies on the same query. They agree on
// the route; A* reaches it after fewer expansions.
func ExampleCompare() {
	g, err := wordgraph.Build([]string{"cat", "bat", "bad", "cot"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, r := range search.Compare(g, "cat", "bad") {
		fmt.Printf("%-3s %v explored=%d edges=%d cost=%.3f\n",
			r.Algorithm, r.Path, r.Stats.NodesExplored, r.Stats.PathLength, r.Stats.TotalCost)
	}
	// Output:
	// BFS [cat bat bad] explored=4 edges=2 cost=3.476
	// UCS [cat bat bad] explored=4 edges=2 cost=3.476
	// A*  [cat bat bad] explored=3 edges=2 cost=3.476
}

// ExampleFinder_NextStep shows the hint contract: the second word of the
// route, or the current word when there is nothing to suggest.
func ExampleFinder_NextStep() {
	g, _ := wordgraph.Build([]string{"cat", "bat", "bad", "cot"})
	f, _ := search.New(g, search.UCS)

	fmt.Println(f.NextStep("cat", "bad"))
	fmt.Println(f.NextStep("bad", "bad"))
	fmt.Println(f.NextStep("zzz", "bad"))
	// Output:
	// bat
	// bad
	// zzz
}
