// SPDX-License-Identifier: MIT
// Package: npcomplete/hampath
//
// types.go — result type, functional options, and sentinels.

package hampath

import "errors"

var (
	// ErrNilGraph indicates a nil *graph.Graph input.
	ErrNilGraph = errors.New("hampath: graph is nil")

	// ErrNodeBudget indicates the backtracking search exceeded the node
	// budget configured with WithMaxNodes.
	ErrNodeBudget = errors.New("hampath: node budget exhausted")

	// ErrTooManyVertices indicates the instance exceeds the Held–Karp
	// vertex budget (table size 2^n·n) or the hard mask-width cap of 62.
	ErrTooManyVertices = errors.New("hampath: too many vertices for subset DP")
)

// maxMaskWidth is the hard cap: subset masks must fit an int64.
const maxMaskWidth = 62

// defaultMaxVertices keeps the default Held–Karp table in the tens of
// megabytes (n·2^n predecessor cells).
const defaultMaxVertices = 20

// Result is the outcome of a Hamiltonian path search.
type Result struct {
	// Found reports whether a Hamiltonian path exists.
	Found bool

	// Path lists every vertex exactly once, consecutive pairs adjacent,
	// when Found; nil otherwise.
	Path []int

	// Nodes counts recursive calls (Backtracking) or examined
	// (mask, end-vertex) transitions (HeldKarp).
	Nodes int
}

// Option configures a solve call.
type Option func(*options)

type options struct {
	maxNodes    int // backtracking budget; 0 = unlimited
	maxVertices int // Held–Karp table budget
}

func defaultOptions() options {
	return options{maxNodes: 0, maxVertices: defaultMaxVertices}
}

// WithMaxNodes bounds Backtracking's recursive calls. Non-positive means
// unlimited; exceeding the budget surfaces ErrNodeBudget.
func WithMaxNodes(n int) Option {
	return func(o *options) { o.maxNodes = n }
}

// WithMaxVertices raises or lowers HeldKarp's vertex budget. Values above
// the mask-width cap of 62 are clamped to it; non-positive values restore
// the default.
func WithMaxVertices(n int) Option {
	return func(o *options) {
		switch {
		case n <= 0:
			o.maxVertices = defaultMaxVertices
		case n > maxMaskWidth:
			o.maxVertices = maxMaskWidth
		default:
			o.maxVertices = n
		}
	}
}
