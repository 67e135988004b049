package vertexcover

import (
	"sort"

	"github.com/katalvlaran/npcomplete/graph"
)

// Exact decides whether g has a vertex cover of size ≤ k and returns one
// when it does.
//
// Contract:
//   - g is read-only; all branch-local edge state lives in the walker.
//   - Returned covers satisfy verify.CheckVertexCover by construction and
//     never exceed k vertices.
//   - (Result{Found:false}, nil) is definitive: both endpoints were tried
//     at every choice point within the budget.
//
// Complexity: O(2^k) recursive calls, each O(E) for edge bookkeeping.
//
// Errors: ErrNilGraph, ErrNegativeBudget, ErrNodeBudget.
func Exact(g *graph.Graph, k int, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if k < 0 {
		return Result{}, ErrNegativeBudget
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := newWalker(g, o)
	cover, found, err := w.branch(k)
	res := Result{Nodes: w.nodes}
	if err != nil {
		return res, err
	}
	if found {
		sort.Ints(cover)
		res.Found = true
		res.Cover = cover
	}

	return res, nil
}

// Minimum finds a minimum vertex cover by running Exact's walker with
// budgets k = 0, 1, … until a cover appears; the first hit is optimal.
// Result.Nodes accumulates across iterations, and WithMaxNodes bounds that
// accumulated total.
//
// Complexity: O(2^k*) branching calls overall, k* the optimum size.
//
// Errors: ErrNilGraph, ErrNodeBudget.
func Minimum(g *graph.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := newWalker(g, o)
	for k := 0; k <= g.VertexCount(); k++ {
		cover, found, err := w.branch(k)
		if err != nil {
			return Result{Nodes: w.nodes}, err
		}
		if found {
			sort.Ints(cover)

			return Result{Found: true, Cover: cover, Nodes: w.nodes}, nil
		}
	}

	// Unreachable: taking every vertex always covers every edge.
	return Result{Nodes: w.nodes}, nil
}

// Approx2 returns a vertex cover at most twice the size of an optimal one:
// scan edges in ascending order and, whenever an edge is still uncovered,
// take both its endpoints. The chosen edges form a matching, and any cover
// needs one endpoint of each matching edge, hence the factor 2. The empty
// graph yields the empty cover.
//
// Complexity: O(V + E log E) (dominated by the sorted edge snapshot).
func Approx2(g *graph.Graph) []int {
	if g == nil {
		return []int{}
	}
	in := make(map[int]struct{})
	for _, e := range g.Edges() {
		if _, u := in[e.U]; u {
			continue
		}
		if _, v := in[e.V]; v {
			continue
		}
		in[e.U] = struct{}{}
		in[e.V] = struct{}{}
	}
	cover := make([]int, 0, len(in))
	for v := range in {
		cover = append(cover, v)
	}
	sort.Ints(cover)

	return cover
}

// walker owns the edge arena for one search: the immutable edge list, an
// activity flag per edge, per-vertex incidence indices, and the counters.
type walker struct {
	opts      options
	edges     []graph.Edge
	active    []bool
	touching  map[int][]int // vertex -> indices into edges
	remaining int
	nodes     int
}

func newWalker(g *graph.Graph, o options) *walker {
	edges := g.Edges()
	w := &walker{
		opts:      o,
		edges:     edges,
		active:    make([]bool, len(edges)),
		touching:  make(map[int][]int, g.VertexCount()),
		remaining: len(edges),
	}
	for i, e := range edges {
		w.active[i] = true
		w.touching[e.U] = append(w.touching[e.U], i)
		w.touching[e.V] = append(w.touching[e.V], i)
	}

	return w
}

// branch tries to cover all remaining active edges with at most budget
// vertices. On success the chosen vertices come back in reverse pick order;
// the caller sorts. The arena is always restored before returning, so a
// walker can be reused across budgets.
func (w *walker) branch(budget int) ([]int, bool, error) {
	w.nodes++
	if w.opts.maxNodes > 0 && w.nodes > w.opts.maxNodes {
		return nil, false, ErrNodeBudget
	}

	if w.remaining == 0 {
		return nil, true, nil
	}
	if budget == 0 {
		return nil, false, nil
	}

	// Deterministic pick: the lowest-indexed active edge. The arena is
	// sorted lexicographically, so this is the smallest (u, v).
	pick := -1
	for i, ok := range w.active {
		if ok {
			pick = i

			break
		}
	}
	e := w.edges[pick]

	for _, cand := range []int{e.U, e.V} {
		undo := w.deactivate(cand)
		cover, found, err := w.branch(budget - 1)
		w.restore(undo)
		if err != nil {
			return nil, false, err
		}
		if found {
			return append(cover, cand), true, nil
		}
	}

	return nil, false, nil
}

// deactivate retires every active edge touching v and returns the undo log.
func (w *walker) deactivate(v int) []int {
	var undo []int
	for _, idx := range w.touching[v] {
		if w.active[idx] {
			w.active[idx] = false
			w.remaining--
			undo = append(undo, idx)
		}
	}

	return undo
}

// restore reverts a deactivate, re-activating the logged edges.
func (w *walker) restore(undo []int) {
	for _, idx := range undo {
		w.active[idx] = true
		w.remaining++
	}
}
