// SPDX-License-Identifier: MIT
// Package: npcomplete/sat
//
// types.go — result type, functional options, and sentinels for the DPLL engine.

package sat

import (
	"errors"

	"github.com/katalvlaran/npcomplete/cnf"
)

// ErrNodeBudget indicates the search exceeded the node budget configured
// with WithMaxNodes. It is a resource signal, distinct from a definitive
// unsatisfiable result.
var ErrNodeBudget = errors.New("sat: node budget exhausted")

// Result is the outcome of a Solve call.
type Result struct {
	// Satisfiable reports whether a satisfying assignment exists.
	Satisfiable bool

	// Model is a satisfying assignment when Satisfiable, nil otherwise.
	// Variables eliminated before ever being touched by the search may be
	// absent; validators treat unassigned as false.
	Model cnf.Assignment

	// Nodes is the number of recursive DPLL invocations, root included.
	Nodes int
}

// Option configures a Solve call.
type Option func(*options)

type options struct {
	maxNodes int // 0 = unlimited
}

func defaultOptions() options {
	return options{maxNodes: 0}
}

// WithMaxNodes bounds the number of recursive invocations. A non-positive
// value means unlimited. When the budget is exceeded, Solve returns
// ErrNodeBudget with the node count reached so far.
func WithMaxNodes(n int) Option {
	return func(o *options) { o.maxNodes = n }
}
