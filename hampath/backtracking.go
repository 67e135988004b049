package hampath

import (
	"github.com/katalvlaran/npcomplete/graph"
)

// Backtracking searches for a Hamiltonian path by depth-first extension.
//
// Start vertices are attempted in ascending id order; from each, the path
// is extended to the smallest unvisited neighbor first and the extension is
// undone on dead ends. The first complete path wins, so results are
// deterministic. The input graph is never mutated.
//
// Complexity: O(n!) recursive calls worst case, each O(deg) work.
//
// Errors: ErrNilGraph, ErrNodeBudget.
func Backtracking(g *graph.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	vertices := g.Vertices()
	n := len(vertices)
	if n == 0 {
		return Result{Found: true, Path: []int{}}, nil
	}

	w := &pathWalker{
		graph:   g,
		opts:    o,
		n:       n,
		visited: make(map[int]bool, n),
	}
	for _, start := range vertices {
		w.visited[start] = true
		w.path = append(w.path[:0], start)
		found, err := w.extend(start)
		w.visited[start] = false
		if err != nil {
			return Result{Nodes: w.nodes}, err
		}
		if found {
			out := make([]int, n)
			copy(out, w.path)

			return Result{Found: true, Path: out, Nodes: w.nodes}, nil
		}
	}

	return Result{Nodes: w.nodes}, nil
}

// pathWalker carries the DFS state for one Backtracking call.
type pathWalker struct {
	graph   *graph.Graph
	opts    options
	n       int
	visited map[int]bool
	path    []int
	nodes   int
}

// extend tries to grow the current path from v. Every invocation counts one
// node. On failure the walker state is exactly as before the call.
func (w *pathWalker) extend(v int) (bool, error) {
	w.nodes++
	if w.opts.maxNodes > 0 && w.nodes > w.opts.maxNodes {
		return false, ErrNodeBudget
	}

	if len(w.path) == w.n {
		return true, nil
	}

	nbrs, err := w.graph.Neighbors(v) // ascending order
	if err != nil {
		return false, err // unreachable for vertices taken from g itself
	}
	for _, nbr := range nbrs {
		if w.visited[nbr] {
			continue
		}
		w.visited[nbr] = true
		w.path = append(w.path, nbr)
		found, err := w.extend(nbr)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
		w.path = w.path[:len(w.path)-1]
		w.visited[nbr] = false
	}

	return false, nil
}
