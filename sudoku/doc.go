// Package sudoku encodes 4×4 Sudoku puzzles as CNF and solves them with
// the module's own DPLL engine — the end-to-end showcase that an arbitrary
// constraint puzzle rides on the SAT engine unchanged.
//
// Variables follow the fixed scheme v(r,c,d) = 16·(d−1) + 4·(r−1) + c for
// rows, columns, and digits in 1..4, so the encoding is deterministic and
// the model decodes straight back into a grid. Constraints are the usual
// exactly-one clauses per cell, row, column, and 2×2 box, plus unit clauses
// for the given digits.
package sudoku
