package sat

import (
	"github.com/katalvlaran/npcomplete/cnf"
)

// Solve decides satisfiability of f with DPLL.
//
// Contract:
//   - f must pass cnf validation (fail fast, before any search).
//   - Returned models satisfy every clause of f by construction; the
//     verify package is the independent oracle for that property.
//   - (Result{Satisfiable: false}, nil) is a definitive answer reached only
//     after the full pruned search space was explored.
//
// Complexity: O(2^Vars) recursive invocations worst case; each invocation
// simplifies the clause set in O(total literals).
//
// Errors: cnf validation sentinels, ErrNodeBudget.
func Solve(f cnf.Formula, opts ...Option) (Result, error) {
	if err := f.Validate(); err != nil {
		return Result{}, err
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	s := &search{opts: o}
	sat, model, err := s.dpll(f.Clauses, cnf.Assignment{})
	if err != nil {
		return Result{Nodes: s.nodes}, err
	}
	res := Result{Satisfiable: sat, Nodes: s.nodes}
	if sat {
		res.Model = model
	}

	return res, nil
}

// search carries the per-call instrumentation; nothing escapes the Solve
// invocation that owns it.
type search struct {
	opts  options
	nodes int
}

// dpll runs one recursive step over an immutable clause snapshot.
// The assignment is cloned at branch points, so sibling branches never
// observe each other's writes.
func (s *search) dpll(clauses []cnf.Clause, assign cnf.Assignment) (bool, cnf.Assignment, error) {
	s.nodes++
	if s.opts.maxNodes > 0 && s.nodes > s.opts.maxNodes {
		return false, nil, ErrNodeBudget
	}

	// (a) Unit propagation to fixpoint; an empty clause is a conflict.
	clauses, assign, conflict := unitPropagate(clauses, assign)
	if conflict {
		return false, nil, nil
	}

	// (b) Pure-literal elimination: single-polarity variables are fixed to
	// the satisfying polarity, removing every clause they appear in.
	clauses, assign = pureLiteralElim(clauses, assign)

	// (c) No clauses left: the assignment built so far satisfies f.
	if len(clauses) == 0 {
		return true, assign, nil
	}

	// (d) Decide on the lowest-indexed unassigned variable, true first.
	v := chooseVariable(clauses, assign)

	for _, val := range []bool{true, false} {
		next := assign.Clone()
		next[v] = val
		lit := cnf.Literal(v)
		if !val {
			lit = lit.Negate()
		}
		sat, model, err := s.dpll(simplify(clauses, lit), next)
		if err != nil {
			return false, nil, err
		}
		if sat {
			return true, model, nil
		}
	}

	return false, nil, nil
}

// unitPropagate repeatedly fixes variables forced by unit clauses until
// fixpoint, a conflict (empty clause or contradictory units), or no units
// remain. Returns the simplified clause set and the extended assignment.
func unitPropagate(clauses []cnf.Clause, assign cnf.Assignment) ([]cnf.Clause, cnf.Assignment, bool) {
	for {
		var unit cnf.Literal
		found := false
		for _, c := range clauses {
			if c.IsEmpty() {
				return clauses, assign, true
			}
			if c.IsUnit() && !found {
				unit = c[0]
				found = true
			}
		}
		if !found {
			return clauses, assign, false
		}

		v, val := unit.Var(), unit.Positive()
		if prev, ok := assign[v]; ok && prev != val {
			return clauses, assign, true
		}
		assign[v] = val
		clauses = simplify(clauses, unit)
	}
}

// pureLiteralElim fixes every variable occurring with a single polarity and
// drops the clauses it satisfies. Pure assignments can never conflict with
// the existing partial assignment: an assigned variable has already been
// simplified out of the clause set.
func pureLiteralElim(clauses []cnf.Clause, assign cnf.Assignment) ([]cnf.Clause, cnf.Assignment) {
	polarity := make(map[cnf.Literal]struct{})
	for _, c := range clauses {
		for _, l := range c {
			polarity[l] = struct{}{}
		}
	}
	pures := make(map[cnf.Literal]struct{})
	for l := range polarity {
		if _, both := polarity[l.Negate()]; !both {
			pures[l] = struct{}{}
		}
	}
	if len(pures) == 0 {
		return clauses, assign
	}

	for l := range pures {
		assign[l.Var()] = l.Positive()
	}
	kept := make([]cnf.Clause, 0, len(clauses))
	for _, c := range clauses {
		satisfied := false
		for _, l := range c {
			if _, ok := pures[l]; ok {
				satisfied = true

				break
			}
		}
		if !satisfied {
			kept = append(kept, c)
		}
	}

	return kept, assign
}

// chooseVariable returns the lowest-indexed unassigned variable occurring in
// the remaining clauses. At least one exists whenever clauses remain, since
// assigned variables are simplified away.
func chooseVariable(clauses []cnf.Clause, assign cnf.Assignment) int {
	best := 0
	for _, c := range clauses {
		for _, l := range c {
			v := l.Var()
			if _, ok := assign[v]; ok {
				continue
			}
			if best == 0 || v < best {
				best = v
			}
		}
	}

	return best
}

// simplify applies literal lit set to true: clauses containing lit are
// satisfied and dropped, occurrences of its negation are stripped. The
// input slice is never mutated; branches own their snapshots.
func simplify(clauses []cnf.Clause, lit cnf.Literal) []cnf.Clause {
	neg := lit.Negate()
	out := make([]cnf.Clause, 0, len(clauses))
	for _, c := range clauses {
		if c.Contains(lit) {
			continue
		}
		if !c.Contains(neg) {
			out = append(out, c)

			continue
		}
		stripped := make(cnf.Clause, 0, len(c)-1)
		for _, l := range c {
			if l != neg {
				stripped = append(stripped, l)
			}
		}
		out = append(out, stripped)
	}

	return out
}
