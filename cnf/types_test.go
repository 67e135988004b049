package cnf_test

import (
	"testing"

	"github.com/katalvlaran/npcomplete/cnf"
	"github.com/stretchr/testify/require"
)

func TestLiteral_VarAndPolarity(t *testing.T) {
	require.Equal(t, 3, cnf.Literal(3).Var())
	require.Equal(t, 3, cnf.Literal(-3).Var())
	require.True(t, cnf.Literal(3).Positive())
	require.False(t, cnf.Literal(-3).Positive())
	require.Equal(t, cnf.Literal(-3), cnf.Literal(3).Negate())
}

func TestClause_Predicates(t *testing.T) {
	require.True(t, cnf.Clause{}.IsEmpty())
	require.True(t, cnf.Clause{1}.IsUnit())
	require.False(t, cnf.Clause{1, 2}.IsUnit())
	require.True(t, cnf.Clause{1, -2, -1}.IsTautology())
	require.False(t, cnf.Clause{1, -2, 3}.IsTautology())
	// duplicates are permitted and are not tautological on their own
	require.False(t, cnf.Clause{1, 1}.IsTautology())
}

func TestNewFormula_Valid(t *testing.T) {
	f, err := cnf.NewFormula(2, [][]int{{1, 2}, {-1, -2}})
	require.NoError(t, err)
	require.Equal(t, 2, f.Vars)
	require.Len(t, f.Clauses, 2)
	require.Equal(t, cnf.Clause{1, 2}, f.Clauses[0])
}

func TestNewFormula_Malformed(t *testing.T) {
	_, err := cnf.NewFormula(2, [][]int{{1, 0}})
	require.ErrorIs(t, err, cnf.ErrZeroLiteral)

	_, err = cnf.NewFormula(2, [][]int{{1, -3}})
	require.ErrorIs(t, err, cnf.ErrLiteralOutOfRange)

	_, err = cnf.NewFormula(-1, nil)
	require.ErrorIs(t, err, cnf.ErrNegativeVars)
}

func TestFormula_CloneIsDeep(t *testing.T) {
	f, err := cnf.NewFormula(2, [][]int{{1, 2}})
	require.NoError(t, err)
	g := f.Clone()
	g.Clauses[0][0] = -2
	require.Equal(t, cnf.Literal(1), f.Clauses[0][0])
}

func TestAssignment_Value(t *testing.T) {
	a := cnf.Assignment{1: true, 2: false}

	v, ok := a.Value(1)
	require.True(t, ok)
	require.True(t, v)

	v, ok = a.Value(-1)
	require.True(t, ok)
	require.False(t, v)

	v, ok = a.Value(-2)
	require.True(t, ok)
	require.True(t, v)

	_, ok = a.Value(3)
	require.False(t, ok)
}
