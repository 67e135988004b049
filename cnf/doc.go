// Package cnf defines the propositional-logic value types shared by the
// SAT engine, the reductions, and the validators: Literal, Clause, Formula,
// and Assignment, plus a DIMACS CNF codec.
//
// Representation:
//
//   - A Literal is a signed integer: its magnitude is the 1-based variable
//     index, its sign is the polarity. Literal 0 is invalid.
//   - A Clause is a disjunction of literals. Duplicates are permitted but
//     semantically idempotent; a clause holding both a literal and its
//     negation is a tautology.
//   - A Formula is a conjunction of clauses together with a variable count;
//     every literal magnitude must stay within that count.
//   - An Assignment is a partial map from variable index to boolean;
//     an unassigned variable is distinct from a false one.
//
// All types are plain values with no hidden state. Formula.Validate is the
// single structural gate: solvers and reductions call it before any search
// begins, so malformed instances fail fast with a sentinel error instead of
// being silently truncated.
//
// DIMACS:
//
//	p cnf <nVars> <nClauses>
//	<lit> <lit> ... 0
//
// ParseDIMACS is whitespace-tolerant (comment lines, blank lines, clauses
// spanning several lines); DIMACS() emits the fixed canonical form, so
// parse∘emit is the identity on formulas and emit∘parse normalizes any
// accepted text.
package cnf
