package verify

import (
	"github.com/katalvlaran/npcomplete/cnf"
	"github.com/katalvlaran/npcomplete/graph"
)

// CheckSat reports whether model satisfies every clause of f: each clause
// must hold at least one literal made true by the model. Unassigned
// variables count as false, so partial models are judged conservatively.
//
// Complexity: O(total number of literals).
func CheckSat(f cnf.Formula, model cnf.Assignment) bool {
	for _, c := range f.Clauses {
		satisfied := false
		for _, l := range c {
			if model[l.Var()] == l.Positive() {
				satisfied = true

				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}

// CheckVertexCover reports whether cover touches every edge of g. Every
// listed vertex must exist in g; the empty cover is valid exactly when g
// has no edges.
//
// Complexity: O(len(cover) + V + E).
func CheckVertexCover(g *graph.Graph, cover []int) bool {
	if g == nil {
		return false
	}
	in := make(map[int]struct{}, len(cover))
	for _, v := range cover {
		if !g.HasVertex(v) {
			return false
		}
		in[v] = struct{}{}
	}
	for _, e := range g.Edges() {
		if _, u := in[e.U]; u {
			continue
		}
		if _, v := in[e.V]; v {
			continue
		}

		return false
	}

	return true
}

// CheckHamiltonianPath reports whether path visits every vertex of g
// exactly once with every consecutive pair adjacent. The empty path is
// valid exactly for the empty graph.
//
// Complexity: O(V + len(path)).
func CheckHamiltonianPath(g *graph.Graph, path []int) bool {
	if g == nil {
		return false
	}
	if len(path) != g.VertexCount() {
		return false
	}
	seen := make(map[int]struct{}, len(path))
	for i, v := range path {
		if !g.HasVertex(v) {
			return false
		}
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
		if i > 0 && !g.HasEdge(path[i-1], v) {
			return false
		}
	}

	return true
}

// CheckSubsetSum reports whether witness — a set of indices into values —
// selects elements summing exactly to target. Out-of-range or repeated
// indices fail the check.
//
// Complexity: O(len(witness)).
func CheckSubsetSum(values []int, witness []int, target int) bool {
	seen := make(map[int]struct{}, len(witness))
	sum := 0
	for _, i := range witness {
		if i < 0 || i >= len(values) {
			return false
		}
		if _, dup := seen[i]; dup {
			return false
		}
		seen[i] = struct{}{}
		sum += values[i]
	}

	return sum == target
}
