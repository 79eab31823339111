// File: components.go
// Role: Connected-component labelling with a disjoint-set forest.

package wordgraph

// Components labels every word with the id of its connected component.
// Ids are dense, starting at 0, assigned in ascending order of each
// component's smallest word.
type Components struct {
	id    map[string]int
	sizes []int
}

// Components computes connected components with union-find (path halving,
// union by rank) over every edge.
// Complexity: O((N + E)·α(N)) time, O(N) space.
func (g *Graph) Components() *Components {
	parent := make(map[string]string, len(g.words))
	rank := make(map[string]int, len(g.words))
	for _, w := range g.words {
		parent[w] = w
	}

	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v string) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
	}

	g.EachEdge(func(a, b string, _ float64) bool {
		union(a, b)
		return true
	})

	c := &Components{id: make(map[string]int, len(g.words))}
	rootID := make(map[string]int)
	for _, w := range g.words {
		r := find(w)
		id, ok := rootID[r]
		if !ok {
			id = len(c.sizes)
			rootID[r] = id
			c.sizes = append(c.sizes, 0)
		}
		c.id[w] = id
		c.sizes[id]++
	}

	return c
}

// Of returns the component id of w.
func (c *Components) Of(w string) (int, bool) {
	id, ok := c.id[w]

	return id, ok
}

// Connected reports whether a and b are known words in the same component.
func (c *Components) Connected(a, b string) bool {
	ia, okA := c.id[a]
	ib, okB := c.id[b]

	return okA && okB && ia == ib
}

// Size returns the number of words in w's component, 0 if w is unknown.
func (c *Components) Size(w string) int {
	id, ok := c.id[w]
	if !ok {
		return 0
	}

	return c.sizes[id]
}

// Count returns the number of components.
func (c *Components) Count() int { return len(c.sizes) }

// Largest returns the size of the biggest component.
func (c *Components) Largest() int {
	max := 0
	for _, s := range c.sizes {
		if s > max {
			max = s
		}
	}

	return max
}
