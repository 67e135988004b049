package sat_test

import (
	"testing"

	"github.com/katalvlaran/npcomplete/cnf"
	"github.com/katalvlaran/npcomplete/sat"
	"github.com/katalvlaran/npcomplete/verify"
	"github.com/stretchr/testify/require"
)

func mustFormula(t *testing.T, nVars int, clauses [][]int) cnf.Formula {
	t.Helper()
	f, err := cnf.NewFormula(nVars, clauses)
	require.NoError(t, err)

	return f
}

func TestSolve_EmptyFormula(t *testing.T) {
	res, err := sat.Solve(cnf.Formula{})
	require.NoError(t, err)
	require.True(t, res.Satisfiable)
	require.Equal(t, 1, res.Nodes)
}

func TestSolve_SimpleSat(t *testing.T) {
	// [[1,2],[-1,-2]] — satisfiable, e.g. {1:true, 2:false}
	f := mustFormula(t, 2, [][]int{{1, 2}, {-1, -2}})
	res, err := sat.Solve(f)
	require.NoError(t, err)
	require.True(t, res.Satisfiable)
	require.True(t, verify.CheckSat(f, res.Model))
}

func TestSolve_UnitConflict(t *testing.T) {
	// [[1],[-1]] — the conflict falls out of propagation at the root:
	// one node, zero branching decisions.
	f := mustFormula(t, 1, [][]int{{1}, {-1}})
	res, err := sat.Solve(f)
	require.NoError(t, err)
	require.False(t, res.Satisfiable)
	require.Nil(t, res.Model)
	require.Equal(t, 1, res.Nodes)
}

func TestSolve_PureLiteralShortCircuit(t *testing.T) {
	// variable 1 only occurs positively; eliminating it satisfies every
	// clause without a single decision.
	f := mustFormula(t, 2, [][]int{{1, 2}, {1, -2}})
	res, err := sat.Solve(f)
	require.NoError(t, err)
	require.True(t, res.Satisfiable)
	require.Equal(t, 1, res.Nodes)
	require.True(t, verify.CheckSat(f, res.Model))
}

func TestSolve_UnsatPigeonhole(t *testing.T) {
	// 3 pigeons, 2 holes: vars p(i,h) = 2(i-1)+h
	clauses := [][]int{
		{1, 2}, {3, 4}, {5, 6}, // each pigeon placed
		{-1, -3}, {-1, -5}, {-3, -5}, // hole 1 at most once
		{-2, -4}, {-2, -6}, {-4, -6}, // hole 2 at most once
	}
	f := mustFormula(t, 6, clauses)
	res, err := sat.Solve(f)
	require.NoError(t, err)
	require.False(t, res.Satisfiable)
	require.Greater(t, res.Nodes, 1)
}

func TestSolve_ModelIsSound(t *testing.T) {
	f := mustFormula(t, 4, [][]int{
		{1, 2, -3}, {-1, 3}, {2, 3, 4}, {-2, -4}, {1, -2, 3},
	})
	res, err := sat.Solve(f)
	require.NoError(t, err)
	require.True(t, res.Satisfiable)
	require.True(t, verify.CheckSat(f, res.Model))
}

func TestSolve_Deterministic(t *testing.T) {
	f := mustFormula(t, 4, [][]int{{1, 2}, {-1, 3}, {-3, 4}, {-2, -4, 1}})
	first, err := sat.Solve(f)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := sat.Solve(f)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestSolve_MalformedFailsFast(t *testing.T) {
	bad := cnf.Formula{Vars: 1, Clauses: []cnf.Clause{{2}}}
	_, err := sat.Solve(bad)
	require.ErrorIs(t, err, cnf.ErrLiteralOutOfRange)
}

func TestSolve_NodeBudget(t *testing.T) {
	// pigeonhole needs more than one node; a budget of 1 must trip
	f := mustFormula(t, 6, [][]int{
		{1, 2}, {3, 4}, {5, 6},
		{-1, -3}, {-1, -5}, {-3, -5},
		{-2, -4}, {-2, -6}, {-4, -6},
	})
	res, err := sat.Solve(f, sat.WithMaxNodes(1))
	require.ErrorIs(t, err, sat.ErrNodeBudget)
	require.Equal(t, 2, res.Nodes)
}
