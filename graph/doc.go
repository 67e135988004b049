// Package graph provides the undirected simple graph consumed by the
// vertex-cover and Hamiltonian-path engines.
//
// Vertices are positive integers. Adjacency is stored symmetrically in both
// directions by construction — AddEdge is the only mutation path, so the
// symmetry invariant cannot be violated from outside. Self-loops and
// multi-edges are rejected.
//
// The solvers in this module treat a Graph as an immutable value for the
// duration of a solve call: they never mutate their input, and branch-local
// edge state lives inside the solver (undo logs, bitsets), not in the Graph.
// Consequently the type carries no locking; share a Graph across goroutines
// only for reading, or hand each goroutine its own Clone.
//
// Accessors return vertices, neighbors, and edges in ascending order, which
// is what makes every solver in this module deterministic.
package graph
