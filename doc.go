// Package npcomplete is an empirical tour of NP-completeness: exact and
// approximate solvers for canonical NP-complete problems, the reductions
// that tie them together, and independent validators for every witness.
//
// 🚀 What is npcomplete?
//
//	A deterministic, dependency-light library that brings together:
//		• SAT: DPLL with unit propagation and pure-literal elimination
//		• Subset Sum: brute force and Horowitz–Sahni meet-in-the-middle
//		• Vertex Cover: bounded branching (exact) and a 2-approximation
//		• Hamiltonian Path: DFS backtracking and Held–Karp subset DP
//		• Reductions: 3-SAT → Vertex Cover, Subset Sum → SAT (parity)
//		• Validators: pure oracles for every kind of witness
//		• Instance generators with caller-owned randomness
//		• A 4×4 Sudoku → SAT encoder riding on the DPLL engine
//
// ✨ Why choose npcomplete?
//
//   - Honest exponential search — node and transition counters expose the
//     blow-up instead of hiding it
//   - Deterministic by contract — fixed tie-breaks, no internal randomness
//   - Strict sentinel errors — malformed instances fail before any search
//   - Pure Go — no cgo, no hidden deps
//
// Everything is organized under small subpackages:
//
//	cnf/         — literals, clauses, formulas, assignments, DIMACS codec
//	graph/       — the undirected simple graph the cover/path engines share
//	sat/         — the DPLL engine
//	subsetsum/   — brute-force and meet-in-the-middle solvers
//	vertexcover/ — exact branching, Minimum, and the 2-approximation
//	hampath/     — backtracking and Held–Karp
//	reduce/      — the problem-to-problem reductions
//	verify/      — the independent correctness oracles
//	gen/         — seeded random instance builders
//	sudoku/      — the SAT-backed puzzle bonus
//
// Exponential worst cases are the point, not a bug: budget options
// (WithMaxNodes, WithMaxVertices) turn runaway searches into clean
// sentinel-error returns so callers stay in control.
//
//	go get github.com/katalvlaran/npcomplete
package npcomplete
