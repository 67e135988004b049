package reduce

import (
	"math/bits"

	"github.com/katalvlaran/npcomplete/cnf"
)

// SubsetSumToSAT encodes a Subset Sum instance as CNF via bitwise parity.
//
// Variable numbering (fixed, deterministic):
//   - b_i = i+1 for each value index i: "value i is included";
//   - then one sum bit S_k per bit position k in 0..width−1;
//   - then Tseitin auxiliaries, allocated per bit position in chain order.
//
// Per bit position k, the selection bits of the values contributing to that
// position are XOR-chained (each XOR gate is four CNF clauses), the chain
// result is bound to S_k, and S_k is forced to the target's bit k. Bit
// positions with no contributors force S_k directly, leaving them otherwise
// unconstrained.
//
// KNOWN LIMITATION (by contract of this module, do not repair): this is a
// parity check, not a sum equality — carries between bit positions are not
// modeled, so a satisfying selection only matches the target's bit pattern
// under XOR, not under integer addition. See the package documentation and
// the mismatch test for a concrete counterexample. DIMACS text for the
// result comes from (cnf.Formula).DIMACS().
//
// Complexity: O(len(values) · width) variables and clauses.
//
// Errors: ErrNegativeTarget, ErrNegativeValue.
func SubsetSumToSAT(values []int, target int) (cnf.Formula, error) {
	if target < 0 {
		return cnf.Formula{}, ErrNegativeTarget
	}
	for _, v := range values {
		if v < 0 {
			return cnf.Formula{}, ErrNegativeValue
		}
	}

	width := bits.Len(uint(target))
	for _, v := range values {
		width = max(width, bits.Len(uint(v)))
	}
	width = max(width, 1) + 1

	enc := &parityEncoder{}
	selection := make([]cnf.Literal, len(values))
	for i := range values {
		selection[i] = enc.fresh()
	}
	sumBits := make([]cnf.Literal, width)
	for k := range sumBits {
		sumBits[k] = enc.fresh()
	}

	for k := 0; k < width; k++ {
		targetBit := (target>>uint(k))&1 == 1
		enc.force(sumBits[k], targetBit)

		var chain []cnf.Literal
		for i, v := range values {
			if (v>>uint(k))&1 == 1 {
				chain = append(chain, selection[i])
			}
		}
		if len(chain) == 0 {
			// No contributor: S_k carries the target bit but constrains
			// nothing — part of the documented unsoundness.
			continue
		}

		cur := chain[0]
		for _, next := range chain[1:] {
			out := enc.fresh()
			enc.xor(cur, next, out)
			cur = out
		}
		enc.equiv(cur, sumBits[k])
	}

	return cnf.Formula{Vars: enc.nVars, Clauses: enc.clauses}, nil
}

// parityEncoder hands out fresh variables and accumulates clauses.
type parityEncoder struct {
	nVars   int
	clauses []cnf.Clause
}

// fresh allocates the next variable and returns its positive literal.
func (e *parityEncoder) fresh() cnf.Literal {
	e.nVars++

	return cnf.Literal(e.nVars)
}

// force pins literal l to the given truth value with a unit clause.
func (e *parityEncoder) force(l cnf.Literal, val bool) {
	if !val {
		l = l.Negate()
	}
	e.clauses = append(e.clauses, cnf.Clause{l})
}

// equiv emits a ↔ b as two binary clauses.
func (e *parityEncoder) equiv(a, b cnf.Literal) {
	e.clauses = append(e.clauses,
		cnf.Clause{a.Negate(), b},
		cnf.Clause{a, b.Negate()},
	)
}

// xor emits the four clauses of out ↔ a ⊕ b.
func (e *parityEncoder) xor(a, b, out cnf.Literal) {
	e.clauses = append(e.clauses,
		cnf.Clause{a.Negate(), b.Negate(), out.Negate()},
		cnf.Clause{a, b, out.Negate()},
		cnf.Clause{a, b.Negate(), out},
		cnf.Clause{a.Negate(), b, out},
	)
}
