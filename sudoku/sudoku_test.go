package sudoku_test

import (
	"testing"

	"github.com/katalvlaran/npcomplete/sat"
	"github.com/katalvlaran/npcomplete/sudoku"
	"github.com/katalvlaran/npcomplete/verify"
	"github.com/stretchr/testify/require"
)

// requireValidSolution checks rows, columns, boxes, and givens.
func requireValidSolution(t *testing.T, puzzle, solved sudoku.Grid) {
	t.Helper()
	for r := 0; r < sudoku.Size; r++ {
		rowSeen := map[int]bool{}
		colSeen := map[int]bool{}
		for c := 0; c < sudoku.Size; c++ {
			require.GreaterOrEqual(t, solved[r][c], 1)
			require.LessOrEqual(t, solved[r][c], sudoku.Size)
			require.False(t, rowSeen[solved[r][c]], "row %d repeats %d", r, solved[r][c])
			rowSeen[solved[r][c]] = true
			require.False(t, colSeen[solved[c][r]], "col %d repeats %d", r, solved[c][r])
			colSeen[solved[c][r]] = true
			if puzzle[r][c] != 0 {
				require.Equal(t, puzzle[r][c], solved[r][c], "given (%d,%d) changed", r, c)
			}
		}
	}
	for br := 0; br < sudoku.Size; br += 2 {
		for bc := 0; bc < sudoku.Size; bc += 2 {
			seen := map[int]bool{}
			for r := br; r < br+2; r++ {
				for c := bc; c < bc+2; c++ {
					require.False(t, seen[solved[r][c]], "box (%d,%d) repeats %d", br, bc, solved[r][c])
					seen[solved[r][c]] = true
				}
			}
		}
	}
}

func TestSolve_DemoPuzzle(t *testing.T) {
	puzzle := sudoku.Grid{
		{1, 0, 0, 0},
		{0, 0, 4, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 2},
	}
	ok, solved, err := sudoku.Solve(puzzle)
	require.NoError(t, err)
	require.True(t, ok)
	requireValidSolution(t, puzzle, solved)
}

func TestSolve_Contradiction(t *testing.T) {
	puzzle := sudoku.Grid{
		{1, 1, 0, 0}, // two 1s in a row
	}
	ok, solved, err := sudoku.Solve(puzzle)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, sudoku.Grid{}, solved)
}

func TestEncode_BadDigit(t *testing.T) {
	bad := sudoku.Grid{{5}}
	_, err := sudoku.Encode(bad)
	require.ErrorIs(t, err, sudoku.ErrBadDigit)

	_, _, err = sudoku.Solve(sudoku.Grid{{-1}})
	require.ErrorIs(t, err, sudoku.ErrBadDigit)
}

func TestEncode_ModelSatisfiesEncoding(t *testing.T) {
	puzzle := sudoku.Grid{
		{0, 0, 0, 0},
		{0, 3, 0, 0},
		{0, 0, 2, 0},
		{0, 0, 0, 0},
	}
	f, err := sudoku.Encode(puzzle)
	require.NoError(t, err)
	require.Equal(t, 64, f.Vars)
	require.NoError(t, f.Validate())

	res, err := sat.Solve(f)
	require.NoError(t, err)
	require.True(t, res.Satisfiable)
	require.True(t, verify.CheckSat(f, res.Model))
}

func TestSolve_CompleteGridRoundTrips(t *testing.T) {
	puzzle := sudoku.Grid{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	ok, again, err := sudoku.Solve(puzzle)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, puzzle, again)
}
