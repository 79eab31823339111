// File: frontier.go
// Role: Frontier disciplines shared by the exploration loop.
//   - fifo: insertion order (BFS).
//   - priorityFrontier: min-heap on f with lazy deletion (UCS, A*).

package search

import "container/heap"

// item is one frontier entry: a word reached at accumulated cost g and
// ordered by priority f.
type item struct {
	word string
	g    float64
	f    float64
	seq  int // insertion sequence, breaks priority ties
}

// frontier is the ordering discipline plugged into explore.
type frontier interface {
	push(it item)
	// pop returns the next live entry, or false when none is left.
	pop() (item, bool)
}

// fifo is a slice-backed queue.
type fifo struct {
	q    []item
	head int
}

func (f *fifo) push(it item) { f.q = append(f.q, it) }

func (f *fifo) pop() (item, bool) {
	if f.head == len(f.q) {
		return item{}, false
	}
	it := f.q[f.head]
	f.q[f.head] = item{}
	f.head++

	return it, true
}

// priorityFrontier is a lazy-deletion min-heap. Entries for which stale
// returns true are dropped inside pop and never reach the caller.
type priorityFrontier struct {
	pq    itemPQ
	seq   int
	stale func(it item) bool
}

func (p *priorityFrontier) push(it item) {
	it.seq = p.seq
	p.seq++
	heap.Push(&p.pq, it)
}

func (p *priorityFrontier) pop() (item, bool) {
	for p.pq.Len() > 0 {
		it := heap.Pop(&p.pq).(item)
		if p.stale != nil && p.stale(it) {
			continue
		}
		return it, true
	}

	return item{}, false
}

// itemPQ implements heap.Interface ordered by f, then seq.
type itemPQ []item

// Len returns the number of entries, stale ones included.
func (pq itemPQ) Len() int { return len(pq) }

// Less orders by priority f; equal priorities pop in insertion order.
func (pq itemPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap exchanges entries i and j.
func (pq itemPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be an item. Called by heap.Push.
func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(item)) }

// Pop removes and returns the last entry. Called by heap.Pop after it has
// moved the minimum there.
func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
