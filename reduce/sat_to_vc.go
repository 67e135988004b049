package reduce

import (
	"fmt"

	"github.com/katalvlaran/npcomplete/cnf"
	"github.com/katalvlaran/npcomplete/graph"
)

// ThreeSATToVertexCover builds the vertex-cover instance equivalent to a
// 3-CNF formula.
//
// Vertex numbering (fixed, deterministic):
//   - variable i in 1..Vars: positive endpoint 2i−1, negative endpoint 2i,
//     joined by an edge (the "pair gadget");
//   - clause j (0-based): triangle 2·Vars+3j+1 .. 2·Vars+3j+3, one corner
//     per literal occurrence;
//   - each corner is wired to the variable endpoint of the OPPOSITE
//     polarity, so covering the corner or satisfying the literal are the
//     two ways to pay for the cross edge.
//
// Clauses narrower than three literals are padded by repeating their last
// literal; wider clauses are rejected. Every variable gets its pair gadget
// even when no clause mentions it — its endpoint still costs one cover slot.
//
// Returns the graph and k = Vars + 2·nClauses. The source formula is
// satisfiable iff the graph has a vertex cover of size ≤ k.
//
// Complexity: O(Vars + nClauses) vertices and edges.
//
// Errors: cnf validation sentinels, ErrEmptyClause, ErrClauseTooWide.
func ThreeSATToVertexCover(f cnf.Formula) (*graph.Graph, int, error) {
	if err := f.Validate(); err != nil {
		return nil, 0, err
	}
	for j, c := range f.Clauses {
		if c.IsEmpty() {
			return nil, 0, fmt.Errorf("clause %d: %w", j, ErrEmptyClause)
		}
		if len(c) > 3 {
			return nil, 0, fmt.Errorf("clause %d has %d literals: %w", j, len(c), ErrClauseTooWide)
		}
	}

	g := graph.New()

	// Pair gadgets: one edge per variable.
	for v := 1; v <= f.Vars; v++ {
		if err := g.AddEdge(posVertex(v), negVertex(v)); err != nil {
			return nil, 0, err
		}
	}

	// Clause triangles plus cross edges.
	for j, c := range f.Clauses {
		lits := padTo3(c)
		corners := [3]int{clauseVertex(f.Vars, j, 0), clauseVertex(f.Vars, j, 1), clauseVertex(f.Vars, j, 2)}
		if err := g.AddEdge(corners[0], corners[1]); err != nil {
			return nil, 0, err
		}
		if err := g.AddEdge(corners[1], corners[2]); err != nil {
			return nil, 0, err
		}
		if err := g.AddEdge(corners[0], corners[2]); err != nil {
			return nil, 0, err
		}
		for i, lit := range lits {
			opposite := negVertex(lit.Var())
			if !lit.Positive() {
				opposite = posVertex(lit.Var())
			}
			if err := g.AddEdge(corners[i], opposite); err != nil {
				return nil, 0, err
			}
		}
	}

	return g, f.Vars + 2*len(f.Clauses), nil
}

// posVertex is the pair-gadget endpoint standing for variable v itself.
func posVertex(v int) int { return 2*v - 1 }

// negVertex is the pair-gadget endpoint standing for ¬v.
func negVertex(v int) int { return 2 * v }

// clauseVertex is corner i of clause j's triangle.
func clauseVertex(nVars, j, i int) int { return 2*nVars + 3*j + 1 + i }

// padTo3 widens a 1- or 2-literal clause by repeating its last literal.
// Semantically idempotent: (l ∨ l) ≡ l.
func padTo3(c cnf.Clause) [3]cnf.Literal {
	var out [3]cnf.Literal
	for i := 0; i < 3; i++ {
		if i < len(c) {
			out[i] = c[i]
		} else {
			out[i] = c[len(c)-1]
		}
	}

	return out
}
