// SPDX-License-Identifier: MIT

// File: finder.go
// Role: Finder construction, the shared exploration loop and path queries.

package search

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/wordladder/cost"
	"github.com/katalvlaran/wordladder/wordgraph"
)

// Finder runs one strategy against one graph. It holds a reference to the
// graph and never modifies it.
type Finder struct {
	g    *wordgraph.Graph
	algo Algorithm
	opts Options
}

// New returns a Finder for algo over g.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrUnknownAlgorithm if algo is not BFS, UCS or AStar.
func New(g *wordgraph.Graph, algo Algorithm, opts ...Option) (*Finder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !algo.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(algo))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Finder{g: g, algo: algo, opts: o}, nil
}

// Algorithm returns the strategy this Finder runs.
func (f *Finder) Algorithm() Algorithm { return f.algo }

// Graph returns the graph searched by f.
func (f *Finder) Graph() *wordgraph.Graph { return f.g }

// FindPath searches from start to target.
//
// If either word is not in the graph no search runs and the result is an
// empty path with zero statistics (Algorithm still set). If target is not
// reachable the path is empty and NodesExplored is the size of start's
// component. FindPath(x, x) returns [x] with PathLength 0.
//
// Complexity: O(V + E) for BFS, O((V + E) log E) for UCS and A*.
func (f *Finder) FindPath(start, target string) (Path, Stats) {
	stats := Stats{Algorithm: f.algo}
	if !f.g.Has(start) || !f.g.Has(target) {
		return nil, stats
	}

	began := time.Now()
	r := f.newRun(target)
	path := r.explore(start)

	stats.NodesExplored = r.explored
	if path != nil {
		stats.PathLength = path.Edges()
		stats.TotalCost = r.totalCost(path)
	}
	stats.Elapsed = time.Since(began)

	return path, stats
}

// NextStep returns the word after current on the route to target, or
// current itself when there is no route or current == target.
func (f *Finder) NextStep(current, target string) string {
	path, _ := f.FindPath(current, target)
	if len(path) < 2 {
		return current
	}

	return path[1]
}

// Compare runs every strategy on the same query and returns one Report per
// strategy in BFS, UCS, A* order. A nil graph yields nil.
func Compare(g *wordgraph.Graph, start, target string, opts ...Option) []Report {
	out := make([]Report, 0, len(Algorithms))
	for _, algo := range Algorithms {
		f, err := New(g, algo, opts...)
		if err != nil {
			return nil
		}
		path, stats := f.FindPath(start, target)
		out = append(out, Report{Algorithm: algo, Path: path, Stats: stats})
	}

	return out
}

// run holds the mutable state of a single FindPath call.
type run struct {
	g        *wordgraph.Graph
	algo     Algorithm
	target   string
	onExpand func(string, float64)

	best     map[string]float64 // word → best known g; for BFS also the visited set
	prev     map[string]string  // word → predecessor on the best known route
	closed   map[string]bool    // expanded words (heap strategies)
	fr       frontier
	explored int
	hScale   float64 // A* heuristic weight per differing letter
}

func (f *Finder) newRun(target string) *run {
	r := &run{
		g:        f.g,
		algo:     f.algo,
		target:   target,
		onExpand: f.opts.OnExpand,
		best:     make(map[string]float64),
		prev:     make(map[string]string),
		closed:   make(map[string]bool),
		hScale:   math.Min(1, f.g.MinCost()),
	}
	if f.algo == BFS {
		r.fr = &fifo{}
	} else {
		r.fr = &priorityFrontier{stale: r.stale}
	}

	return r
}

// explore is the loop shared by all strategies: pop, count, check the goal,
// expand. It returns nil when the frontier runs dry.
func (r *run) explore(start string) Path {
	r.best[start] = 0
	r.fr.push(item{word: start, g: 0, f: r.priority(start, 0)})

	for {
		it, ok := r.fr.pop()
		if !ok {
			return nil
		}
		r.explored++
		r.closed[it.word] = true
		r.onExpand(it.word, it.g)

		if it.word == r.target {
			return r.trace(start)
		}
		for _, n := range r.g.Neighbors(it.word) {
			r.relax(it, n)
		}
	}
}

// relax offers neighbour n of it to the frontier.
func (r *run) relax(it item, n string) {
	if r.algo == BFS {
		if _, seen := r.best[n]; seen {
			return
		}
		r.best[n] = it.g + 1
		r.prev[n] = it.word
		r.fr.push(item{word: n, g: it.g + 1})
		return
	}

	if r.closed[n] {
		return
	}
	c, _ := r.g.Cost(it.word, n)
	ng := it.g + c
	if old, ok := r.best[n]; ok && ng >= old {
		return
	}
	r.best[n] = ng
	r.prev[n] = it.word
	r.fr.push(item{word: n, g: ng, f: r.priority(n, ng)})
}

// priority orders heap entries: g for UCS, g + h for A*, where
// h = Hamming(word, target) · min(1, cheapest edge). Each step fixes at most
// one letter and costs at least the cheapest edge, so h stays admissible and
// consistent for any cost function.
func (r *run) priority(word string, g float64) float64 {
	if r.algo == AStar {
		return g + r.hScale*float64(cost.Hamming(word, r.target))
	}

	return g
}

// stale reports an entry superseded by a cheaper one or already expanded.
func (r *run) stale(it item) bool {
	return r.closed[it.word] || it.g > r.best[it.word]
}

// trace walks predecessors back from the target.
func (r *run) trace(start string) Path {
	var rev Path
	for w := r.target; ; w = r.prev[w] {
		rev = append(rev, w)
		if w == start {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// totalCost returns the weighted cost of path. Heap strategies already hold
// it; BFS sums it from the graph.
func (r *run) totalCost(path Path) float64 {
	if r.algo != BFS {
		return r.best[r.target]
	}
	c, err := r.g.PathCost(path)
	if err != nil {
		return 0
	}

	return c
}
