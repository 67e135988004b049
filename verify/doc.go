// Package verify holds the independent correctness oracles for the solver
// engines: pure, deterministic, side-effect-free predicates that confirm a
// returned model, cover, path, or subset actually certifies its instance.
//
// They are deliberately decoupled from the solvers that produce the
// witnesses — no search, no shared helpers — so a solver bug cannot hide
// behind its own checking logic. Tests and the reduction round-trips use
// these functions as the sole source of truth.
//
// All checks return plain booleans and never mutate their inputs; malformed
// witnesses (unknown vertices, repeated indices) simply fail the check.
package verify
