// Package sat implements a didactic DPLL solver over cnf.Formula: recursive
// search with unit propagation and pure-literal elimination, deliberately
// without the industrial machinery (clause learning, watched literals,
// restarts). Exponential blow-up on adversarial inputs is the expected and
// exercised behavior, not a defect to hide.
//
// Search order is fixed and documented: propagation to fixpoint, then
// pure-literal elimination, then a decision on the lowest-indexed unassigned
// variable, trying true before false. Both simplifications are
// equivalence-preserving, so pruning never loses a satisfying assignment.
// Given identical inputs the solver is fully deterministic.
//
// Every recursive invocation, the root included, counts exactly one node in
// Result.Nodes. A conflict detected during propagation therefore costs one
// node and zero branching decisions.
//
// WithMaxNodes bounds the search; exceeding the budget surfaces
// ErrNodeBudget, a distinct signal from the definitive Satisfiable=false
// that exhausting the search space produces.
package sat
