package hampath

import (
	"fmt"

	"github.com/katalvlaran/npcomplete/graph"
)

// Predecessor-table markers. Cells are int8: a predecessor index fits since
// n is capped at 62 well below the int8 range.
const (
	unreached int8 = -2 // no path known for this (mask, end) pair
	pathStart int8 = -1 // the path begins at this vertex
)

// HeldKarp decides Hamiltonian path existence by dynamic programming over
// (visited-set, end-vertex) pairs and reconstructs a concrete path.
//
// dp[mask][j] holds iff a path visits exactly the vertices in mask and ends
// at j; base case dp[{v}][v] for every v, transition by extending a
// reachable state to any unvisited neighbor. The table stores predecessors
// directly, so the answer path is rebuilt by walking them backward from the
// lowest feasible end vertex (deterministic).
//
// Contract: feasibility always agrees with Backtracking; the input graph is
// never mutated.
//
// Complexity: O(n²·2^n) time, O(n·2^n) space.
//
// Errors: ErrNilGraph, ErrTooManyVertices (budget checked before any table
// allocation).
func HeldKarp(g *graph.Graph, opts ...Option) (Result, error) {
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
	if n > o.maxVertices {
		return Result{}, fmt.Errorf("%d vertices, budget %d: %w", n, o.maxVertices, ErrTooManyVertices)
	}

	// Index the vertices and their adjacency by DP position.
	index := make(map[int]int, n)
	for i, v := range vertices {
		index[v] = i
	}
	adj := make([][]int, n)
	for i, v := range vertices {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return Result{}, err // unreachable for vertices taken from g itself
		}
		adj[i] = make([]int, 0, len(nbrs))
		for _, u := range nbrs {
			adj[i] = append(adj[i], index[u])
		}
	}

	// Allocate the predecessor table; parent[mask][j] records how the state
	// (mask, j) was first reached.
	size := 1 << uint(n)
	parent := make([][]int8, size)
	for mask := 0; mask < size; mask++ {
		row := make([]int8, n)
		for j := range row {
			row[j] = unreached
		}
		parent[mask] = row
	}
	for i := 0; i < n; i++ {
		parent[1<<uint(i)][i] = pathStart
	}

	// Forward fill: expand every reachable (mask, j) state once; each
	// expansion counts one transition.
	transitions := 0
	for mask := 1; mask < size; mask++ {
		for j := 0; j < n; j++ {
			if mask&(1<<uint(j)) == 0 || parent[mask][j] == unreached {
				continue
			}
			transitions++
			for _, k := range adj[j] {
				if mask&(1<<uint(k)) != 0 {
					continue
				}
				next := mask | 1<<uint(k)
				if parent[next][k] == unreached {
					parent[next][k] = int8(j)
				}
			}
		}
	}

	// A Hamiltonian path exists iff some end vertex is reachable with the
	// full mask; take the lowest for determinism.
	full := size - 1
	end := -1
	for j := 0; j < n; j++ {
		if parent[full][j] != unreached {
			end = j

			break
		}
	}
	if end < 0 {
		return Result{Nodes: transitions}, nil
	}

	// Reconstruct by walking predecessors backward from (full, end).
	idxPath := make([]int, 0, n)
	mask, cur := full, end
	for {
		idxPath = append(idxPath, cur)
		p := parent[mask][cur]
		if p == pathStart {
			break
		}
		mask ^= 1 << uint(cur)
		cur = int(p)
	}

	path := make([]int, n)
	for i, idx := range idxPath {
		path[n-1-i] = vertices[idx]
	}
	// Reversal is free on an undirected path; orient it with the smaller
	// endpoint first so equal instances yield identical results.
	if n > 1 && path[0] > path[n-1] {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
	}

	return Result{Found: true, Path: path, Nodes: transitions}, nil
}
