package matching

import (
	"container/heap"

	"github.com/katalvlaran/morsekit/chain"
	"github.com/katalvlaran/morsekit/cmplx"
	"github.com/katalvlaran/morsekit/morerr"
)

// genericMatching is the Matching built by NewGeneric.
type genericMatching struct {
	mate     []chain.Cell
	priority []int64
	begin    []int
	reindex  [][2]int
}

func (m *genericMatching) Mate(x chain.Cell) chain.Cell     { return m.mate[x] }
func (m *genericMatching) Priority(x chain.Cell) int64       { return m.priority[x] }
func (m *genericMatching) CriticalCells() ([]int, [][2]int) { return m.begin, m.reindex }

// cellHeap is a min-heap of cell indices, giving the lowest-index cell
// among those pushed. Grounded on dijkstra/dijkstra.go's nodePQ: "we use
// a 'lazy' decrease-key strategy: pushing duplicates into the heap and
// ignoring stale entries" — here a cell is pushed once per set-entry
// transition and a validity flag (not a duplicate-dist check) decides
// whether a popped entry is stale.
type cellHeap []chain.Cell

func (h cellHeap) Len() int            { return len(h) }
func (h cellHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h cellHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *cellHeap) Push(x interface{}) { *h = append(*h, x.(chain.Cell)) }
func (h *cellHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// selectFrom picks the next candidate from h whose valid flag is still
// set. With the default policy (pick == nil) it pops the heap until it
// finds a live entry — O(log n) amortized. With a custom tie-break it
// falls back to scanning every entry ever pushed, since an arbitrary
// pick function needs the whole live candidate set, not just the root.
func selectFrom(h *cellHeap, valid []bool, pick func([]chain.Cell) chain.Cell) (chain.Cell, bool) {
	if pick == nil {
		for h.Len() > 0 {
			x := heap.Pop(h).(chain.Cell)
			if valid[x] {
				valid[x] = false
				return x, true
			}
		}
		return 0, false
	}
	var candidates []chain.Cell
	for _, x := range *h {
		if valid[x] {
			candidates = append(candidates, x)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	chosen := pick(candidates)
	valid[chosen] = false
	return chosen, true
}

// NewGeneric implements the coreduction-by-boundary-count matching
// algorithm of spec.md §4.5, grounded on
// original_source/GenericMorseMatching.h. value must be closed (no cell
// has a face of strictly greater value); this is verified incrementally
// as bd() is evaluated, rather than in one upfront pass, matching the
// original's inline check.
func NewGeneric(c cmplx.Complex, value func(chain.Cell) int, opts ...Option) (Matching, error) {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}

	n := c.Size()
	mate := make([]chain.Cell, n)
	for i := range mate {
		mate[i] = -1
	}
	priority := make([]int64, n)
	boundaryCount := make([]int, n)

	bd := func(x chain.Cell) []chain.Cell {
		var result []chain.Cell
		xVal := value(x)
		c.Column(x, func(y chain.Cell) {
			yVal := value(y)
			if yVal > xVal {
				morerr.Panic("matching.NewGeneric: grading closure violated", int(x))
			}
			if yVal == xVal {
				result = append(result, y)
			}
		})
		return result
	}
	cbd := func(x chain.Cell) []chain.Cell {
		var result []chain.Cell
		xVal := value(x)
		c.Row(x, func(y chain.Cell) {
			if value(y) == xVal {
				result = append(result, y)
			}
		})
		return result
	}

	for d := 0; d <= c.Dimension(); d++ {
		for _, x := range c.Cells(d) {
			boundaryCount[x] = len(bd(x))
		}
	}

	coreducibleHeap := &cellHeap{}
	aceHeap := &cellHeap{}
	inCoreducible := make([]bool, n)
	inAce := make([]bool, n)
	for d := 0; d <= c.Dimension(); d++ {
		for _, x := range c.Cells(d) {
			switch boundaryCount[x] {
			case 0:
				inAce[x] = true
				heap.Push(aceHeap, x)
			case 1:
				inCoreducible[x] = true
				heap.Push(coreducibleHeap, x)
			}
		}
	}

	numProcessed := 0
	process := func(y chain.Cell) {
		priority[y] = int64(value(y))*int64(n) + int64(numProcessed)
		numProcessed++
		inCoreducible[y] = false
		inAce[y] = false
		for _, x := range cbd(y) {
			boundaryCount[x]--
			switch boundaryCount[x] {
			case 0:
				inCoreducible[x] = false
				if !inAce[x] {
					inAce[x] = true
					heap.Push(aceHeap, x)
				}
			case 1:
				if !inCoreducible[x] {
					inCoreducible[x] = true
					heap.Push(coreducibleHeap, x)
				}
			}
		}
	}

	for numProcessed < n {
		if K, ok := selectFrom(coreducibleHeap, inCoreducible, cfg.tieBreak); ok {
			var Q chain.Cell = -1
			for _, x := range bd(K) {
				if mate[x] == -1 {
					Q = x
					break
				}
			}
			if Q == -1 || value(K) != value(Q) {
				morerr.Panic("matching.NewGeneric: coreduction mate invariant failed", int(K))
			}
			mate[K] = Q
			mate[Q] = K
			process(Q)
			process(K)
			continue
		}
		if A, ok := selectFrom(aceHeap, inAce, cfg.tieBreak); ok {
			mate[A] = A
			process(A)
			continue
		}
		morerr.Panic("matching.NewGeneric: no coreducible or ace candidates remain", numProcessed)
	}

	D := c.Dimension()
	begin := make([]int, D+2)
	var reindex [][2]int
	idx := 0
	for d := 0; d <= D; d++ {
		begin[d] = idx
		for _, v := range c.Cells(d) {
			if mate[v] == v {
				reindex = append(reindex, [2]int{int(v), idx})
				idx++
			}
		}
	}
	begin[D+1] = idx

	return &genericMatching{mate: mate, priority: priority, begin: begin, reindex: reindex}, nil
}
