// SPDX-License-Identifier: MIT
// Package: npcomplete/vertexcover
//
// types.go — result type, functional options, and sentinels.

package vertexcover

import "errors"

var (
	// ErrNilGraph indicates a nil *graph.Graph input.
	ErrNilGraph = errors.New("vertexcover: graph is nil")

	// ErrNegativeBudget indicates a negative cover budget k.
	ErrNegativeBudget = errors.New("vertexcover: negative cover budget")

	// ErrNodeBudget indicates the branching search exceeded the node budget
	// configured with WithMaxNodes; distinct from a definitive "no cover".
	ErrNodeBudget = errors.New("vertexcover: node budget exhausted")
)

// Result is the outcome of an exact cover search.
type Result struct {
	// Found reports whether a cover within the budget exists.
	Found bool

	// Cover lists the chosen vertices in ascending order when Found.
	// Its size is ≤ the budget by construction, not necessarily minimal.
	Cover []int

	// Nodes is the number of recursive branching calls, root included.
	// Minimum accumulates it across its k-iterations.
	Nodes int
}

// Option configures Exact and Minimum.
type Option func(*options)

type options struct {
	maxNodes int // 0 = unlimited
}

func defaultOptions() options {
	return options{maxNodes: 0}
}

// WithMaxNodes bounds the number of branching calls. Non-positive means
// unlimited; exceeding the budget surfaces ErrNodeBudget.
func WithMaxNodes(n int) Option {
	return func(o *options) { o.maxNodes = n }
}
