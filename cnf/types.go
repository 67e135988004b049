// SPDX-License-Identifier: MIT
// Package: npcomplete/cnf
//
// types.go — Literal, Clause, Formula, Assignment and the package sentinels.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w wrapping at call sites.
//   • No panics on user input anywhere in this package.

package cnf

import (
	"errors"
	"fmt"
)

// ErrZeroLiteral indicates a literal with magnitude 0. Variable indices are
// 1-based, so 0 encodes nothing and always rejects the instance.
var ErrZeroLiteral = errors.New("cnf: literal 0 is invalid")

// ErrLiteralOutOfRange indicates a literal whose magnitude exceeds the
// formula's declared variable count.
var ErrLiteralOutOfRange = errors.New("cnf: literal out of variable range")

// ErrNegativeVars indicates a formula declaring a negative variable count.
var ErrNegativeVars = errors.New("cnf: negative variable count")

// ErrBadDIMACS indicates text that cannot be parsed as DIMACS CNF
// (missing or malformed header, non-integer token, clause before header).
var ErrBadDIMACS = errors.New("cnf: malformed DIMACS input")

// Literal is a signed propositional literal. The magnitude is the 1-based
// variable index; the sign is the polarity.
type Literal int

// Var returns the 1-based variable index of l.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}

	return int(l)
}

// Positive reports whether l asserts its variable (rather than its negation).
func (l Literal) Positive() bool { return l > 0 }

// Negate returns the literal of opposite polarity over the same variable.
func (l Literal) Negate() Literal { return -l }

// Clause is a disjunction of literals.
type Clause []Literal

// IsEmpty reports whether c holds no literals. An empty clause is
// unsatisfiable and signals a conflict during search.
func (c Clause) IsEmpty() bool { return len(c) == 0 }

// IsUnit reports whether c holds exactly one literal.
func (c Clause) IsUnit() bool { return len(c) == 1 }

// Contains reports whether c holds the exact literal l.
func (c Clause) Contains(l Literal) bool {
	for _, x := range c {
		if x == l {
			return true
		}
	}

	return false
}

// IsTautology reports whether c holds some literal together with its
// negation, making the clause true under every assignment.
//
// Complexity: O(len(c)) time, O(len(c)) space.
func (c Clause) IsTautology() bool {
	seen := make(map[Literal]struct{}, len(c))
	for _, l := range c {
		if _, ok := seen[l.Negate()]; ok {
			return true
		}
		seen[l] = struct{}{}
	}

	return false
}

// Clone returns an independent copy of c.
func (c Clause) Clone() Clause {
	out := make(Clause, len(c))
	copy(out, c)

	return out
}

// Formula is a CNF formula: a conjunction of clauses over variables 1..Vars.
type Formula struct {
	// Vars is the number of variables; every literal magnitude must be ≤ Vars.
	Vars int

	// Clauses is the conjunction; an empty slice is trivially satisfiable.
	Clauses []Clause
}

// NewFormula builds a Formula from raw integer clauses and validates it.
// It copies the input, so later mutation of clauses does not alias the result.
//
// Errors: ErrNegativeVars, ErrZeroLiteral, ErrLiteralOutOfRange.
func NewFormula(nVars int, clauses [][]int) (Formula, error) {
	f := Formula{Vars: nVars, Clauses: make([]Clause, len(clauses))}
	for i, raw := range clauses {
		c := make(Clause, len(raw))
		for j, lit := range raw {
			c[j] = Literal(lit)
		}
		f.Clauses[i] = c
	}
	if err := f.Validate(); err != nil {
		return Formula{}, err
	}

	return f, nil
}

// Validate checks the structural invariants: Vars ≥ 0 and every literal
// magnitude in 1..Vars. Solvers and reductions call it before searching,
// so malformed instances fail fast.
//
// Complexity: O(total number of literals).
func (f Formula) Validate() error {
	if f.Vars < 0 {
		return ErrNegativeVars
	}
	for i, c := range f.Clauses {
		for _, l := range c {
			if l == 0 {
				return fmt.Errorf("clause %d: %w", i, ErrZeroLiteral)
			}
			if l.Var() > f.Vars {
				return fmt.Errorf("clause %d: literal %d: %w", i, int(l), ErrLiteralOutOfRange)
			}
		}
	}

	return nil
}

// Clone returns a deep copy of f.
func (f Formula) Clone() Formula {
	out := Formula{Vars: f.Vars, Clauses: make([]Clause, len(f.Clauses))}
	for i, c := range f.Clauses {
		out.Clauses[i] = c.Clone()
	}

	return out
}

// Assignment is a partial mapping from 1-based variable index to boolean.
// Absent variables are unassigned, which is distinct from false.
type Assignment map[int]bool

// Value resolves literal l under a: value is the truth of l itself,
// assigned reports whether the variable is set at all.
func (a Assignment) Value(l Literal) (value, assigned bool) {
	v, ok := a[l.Var()]
	if !ok {
		return false, false
	}
	if l.Positive() {
		return v, true
	}

	return !v, true
}

// Clone returns an independent copy of a.
func (a Assignment) Clone() Assignment {
	out := make(Assignment, len(a))
	for v, val := range a {
		out[v] = val
	}

	return out
}
