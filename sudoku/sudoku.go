// SPDX-License-Identifier: MIT
// Package: npcomplete/sudoku
//
// sudoku.go — 4×4 Sudoku → CNF encoding and the SAT-backed solver.

package sudoku

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/npcomplete/cnf"
	"github.com/katalvlaran/npcomplete/sat"
)

// Size is the board side; this encoder handles the 4×4 variant.
const Size = 4

// ErrBadDigit indicates a grid cell outside 0..4 (0 means blank).
var ErrBadDigit = errors.New("sudoku: digit out of range")

// Grid is a 4×4 board; 0 marks a blank cell.
type Grid [Size][Size]int

// Encode builds the CNF formula for g: cell, row, column, and box
// exactly-one constraints plus unit clauses for the givens.
//
// Complexity: O(1) — the board size is fixed.
//
// Errors: ErrBadDigit.
func Encode(g Grid) (cnf.Formula, error) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] < 0 || g[r][c] > Size {
				return cnf.Formula{}, fmt.Errorf("cell (%d,%d)=%d: %w", r+1, c+1, g[r][c], ErrBadDigit)
			}
		}
	}

	var clauses []cnf.Clause

	// Cells: at least one digit, at most one digit.
	for r := 1; r <= Size; r++ {
		for c := 1; c <= Size; c++ {
			atLeast := make(cnf.Clause, 0, Size)
			for d := 1; d <= Size; d++ {
				atLeast = append(atLeast, variable(r, c, d))
			}
			clauses = append(clauses, atLeast)
			for d1 := 1; d1 <= Size; d1++ {
				for d2 := d1 + 1; d2 <= Size; d2++ {
					clauses = append(clauses, cnf.Clause{-variable(r, c, d1), -variable(r, c, d2)})
				}
			}
		}
	}

	// Rows and columns: each digit appears, and at most once.
	for d := 1; d <= Size; d++ {
		for r := 1; r <= Size; r++ {
			appears := make(cnf.Clause, 0, Size)
			for c := 1; c <= Size; c++ {
				appears = append(appears, variable(r, c, d))
			}
			clauses = append(clauses, appears)
			for c1 := 1; c1 <= Size; c1++ {
				for c2 := c1 + 1; c2 <= Size; c2++ {
					clauses = append(clauses, cnf.Clause{-variable(r, c1, d), -variable(r, c2, d)})
				}
			}
		}
		for c := 1; c <= Size; c++ {
			appears := make(cnf.Clause, 0, Size)
			for r := 1; r <= Size; r++ {
				appears = append(appears, variable(r, c, d))
			}
			clauses = append(clauses, appears)
			for r1 := 1; r1 <= Size; r1++ {
				for r2 := r1 + 1; r2 <= Size; r2++ {
					clauses = append(clauses, cnf.Clause{-variable(r1, c, d), -variable(r2, c, d)})
				}
			}
		}
	}

	// 2×2 boxes.
	for d := 1; d <= Size; d++ {
		for br := 1; br <= Size; br += 2 {
			for bc := 1; bc <= Size; bc += 2 {
				cells := [][2]int{
					{br, bc}, {br, bc + 1}, {br + 1, bc}, {br + 1, bc + 1},
				}
				appears := make(cnf.Clause, 0, len(cells))
				for _, rc := range cells {
					appears = append(appears, variable(rc[0], rc[1], d))
				}
				clauses = append(clauses, appears)
				for i := 0; i < len(cells); i++ {
					for j := i + 1; j < len(cells); j++ {
						clauses = append(clauses, cnf.Clause{
							-variable(cells[i][0], cells[i][1], d),
							-variable(cells[j][0], cells[j][1], d),
						})
					}
				}
			}
		}
	}

	// Givens pin their variable with a unit clause.
	for r := 1; r <= Size; r++ {
		for c := 1; c <= Size; c++ {
			if d := g[r-1][c-1]; d != 0 {
				clauses = append(clauses, cnf.Clause{variable(r, c, d)})
			}
		}
	}

	return cnf.Formula{Vars: Size * Size * Size, Clauses: clauses}, nil
}

// Solve completes the puzzle with the DPLL engine. The second return is the
// solved grid when solvable, the zero Grid otherwise.
//
// Errors: ErrBadDigit, plus anything sat.Solve surfaces.
func Solve(g Grid, opts ...sat.Option) (bool, Grid, error) {
	f, err := Encode(g)
	if err != nil {
		return false, Grid{}, err
	}
	res, err := sat.Solve(f, opts...)
	if err != nil {
		return false, Grid{}, err
	}
	if !res.Satisfiable {
		return false, Grid{}, nil
	}

	return true, decode(res.Model), nil
}

// variable maps (row, column, digit), all 1-based, onto a DIMACS variable.
func variable(r, c, d int) cnf.Literal {
	return cnf.Literal(Size*Size*(d-1) + Size*(r-1) + c)
}

// decode turns a satisfying model back into a grid.
func decode(model cnf.Assignment) Grid {
	var out Grid
	for v, val := range model {
		if !val || v < 1 || v > Size*Size*Size {
			continue
		}
		idx := v - 1
		d := idx/(Size*Size) + 1
		rem := idx % (Size * Size)
		r := rem / Size
		c := rem % Size
		out[r][c] = d
	}

	return out
}
