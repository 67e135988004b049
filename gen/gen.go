// SPDX-License-Identifier: MIT
// Package: npcomplete/gen
//
// gen.go — seeded instance generators and their sentinels.

package gen

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/npcomplete/cnf"
	"github.com/katalvlaran/npcomplete/graph"
)

var (
	// ErrNeedRandSource indicates a nil *rand.Rand; generators never fall
	// back to global randomness.
	ErrNeedRandSource = errors.New("gen: rand source is nil")

	// ErrTooFewVars indicates too few variables to form a 3-literal clause
	// over distinct literals (at least 2 variables are required).
	ErrTooFewVars = errors.New("gen: too few variables")

	// ErrNegativeCount indicates a negative clause or element count.
	ErrNegativeCount = errors.New("gen: negative count")

	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("gen: probability out of range")

	// ErrBadMaxValue indicates a non-positive value bound.
	ErrBadMaxValue = errors.New("gen: max value must be positive")
)

// Random3SAT samples a 3-CNF formula with nClauses clauses over nVars
// variables. Each clause holds three distinct literals (distinct as
// literals: a variable may still occur in both polarities, making the
// clause tautological — exactly like naturally sampled instances).
//
// Determinism: same r state and parameters ⇒ same formula.
//
// Errors: ErrNeedRandSource, ErrTooFewVars, ErrNegativeCount.
func Random3SAT(r *rand.Rand, nVars, nClauses int) (cnf.Formula, error) {
	if r == nil {
		return cnf.Formula{}, ErrNeedRandSource
	}
	if nVars < 2 {
		return cnf.Formula{}, ErrTooFewVars
	}
	if nClauses < 0 {
		return cnf.Formula{}, ErrNegativeCount
	}

	f := cnf.Formula{Vars: nVars, Clauses: make([]cnf.Clause, 0, nClauses)}
	for j := 0; j < nClauses; j++ {
		clause := make(cnf.Clause, 0, 3)
		seen := make(map[cnf.Literal]struct{}, 3)
		for len(clause) < 3 {
			lit := cnf.Literal(1 + r.Intn(nVars))
			if r.Intn(2) == 0 {
				lit = lit.Negate()
			}
			if _, dup := seen[lit]; dup {
				continue
			}
			seen[lit] = struct{}{}
			clause = append(clause, lit)
		}
		f.Clauses = append(f.Clauses, clause)
	}

	return f, nil
}

// RandomGraph samples an undirected simple graph over vertices 1..n,
// including each of the n·(n−1)/2 possible edges independently with
// probability p. Isolated vertices stay in the graph.
//
// Errors: ErrNeedRandSource, ErrNegativeCount, ErrInvalidProbability.
func RandomGraph(r *rand.Rand, n int, p float64) (*graph.Graph, error) {
	if r == nil {
		return nil, ErrNeedRandSource
	}
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if p < 0 || p > 1 {
		return nil, ErrInvalidProbability
	}

	g := graph.New()
	for v := 1; v <= n; v++ {
		if err := g.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for u := 1; u <= n; u++ {
		for v := u + 1; v <= n; v++ {
			if r.Float64() < p {
				if err := g.AddEdge(u, v); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// RandomSubsetSum samples n values in 1..maxValue and a target equal to the
// sum of the first ⌊n/3⌋ values, so roughly a third of the instances'
// natural witnesses exist by construction.
//
// Errors: ErrNeedRandSource, ErrNegativeCount, ErrBadMaxValue.
func RandomSubsetSum(r *rand.Rand, n, maxValue int) (values []int, target int, err error) {
	if r == nil {
		return nil, 0, ErrNeedRandSource
	}
	if n < 0 {
		return nil, 0, ErrNegativeCount
	}
	if maxValue < 1 {
		return nil, 0, ErrBadMaxValue
	}

	values = make([]int, n)
	for i := range values {
		values[i] = 1 + r.Intn(maxValue)
	}
	for i := 0; i < n/3; i++ {
		target += values[i]
	}

	return values, target, nil
}
