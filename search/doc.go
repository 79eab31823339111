// Package search finds word ladders in a wordgraph.Graph with one of three
// strategies sharing a single exploration loop.
//
// What
//
//   - BFS: FIFO frontier, words marked visited when enqueued. Returns a path
//     with the fewest edges; edge costs are ignored while searching.
//   - UCS: min-heap frontier ordered by accumulated cost g. Returns a path of
//     minimum total weighted cost.
//   - A*: min-heap frontier ordered by g + h, where h is the Hamming distance
//     to the target. Same optimal cost as UCS, usually with fewer expansions.
//
// Every strategy counts one explored node per frontier pop. Heap frontiers
// use lazy deletion: an entry superseded by a cheaper one is dropped when it
// surfaces and is not counted, so NodesExplored is the number of distinct
// words expanded and can be compared across strategies.
//
// Statistics
//
//	Stats.PathLength is the number of edges in the returned path.
//	Stats.TotalCost is always the weighted cost of the returned path; for BFS
//	it is summed from the graph after the path is found.
//
// Unknown words
//
//	FindPath returns an empty path and zero statistics when either endpoint is
//	missing from the graph, exactly as it does when no route exists. Callers
//	that need to tell the two apart check Graph.Has first.
//
// Determinism
//
//	Neighbours are expanded in ascending order and heap ties are broken by
//	insertion order, so a given graph and query always yield the same path
//	and the same statistics.
//
// Concurrency
//
//	A Finder holds a reference to an immutable graph and keeps all search
//	state per call; one Finder may serve concurrent FindPath calls.
//
// Usage
//
//	f, err := search.New(g, search.AStar)
//	if err != nil {
//	    return err
//	}
//	path, stats := f.FindPath("cold", "warm")
//	next := f.NextStep("cold", "warm")
package search
