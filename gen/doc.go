// Package gen builds random problem instances for the solver engines:
// 3-CNF formulas, undirected graphs, and subset-sum value multisets.
//
// The engines themselves are deterministic; all randomness lives here and
// is caller-owned. Every generator takes an explicit *rand.Rand and rejects
// nil with ErrNeedRandSource — there is no package-level seed and no global
// state, so the same source and parameters always reproduce the same
// instance.
//
// Generators validate their parameters early and return sentinel errors;
// they never panic on user input.
package gen
