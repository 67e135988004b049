// SPDX-License-Identifier: MIT
// Package: npcomplete/reduce
//
// types.go — sentinels for the reduction layer.

package reduce

import "errors"

var (
	// ErrEmptyClause indicates a clause with no literals; the vertex-cover
	// gadget needs at least one occurrence to anchor.
	ErrEmptyClause = errors.New("reduce: empty clause")

	// ErrClauseTooWide indicates a clause with more than three literals;
	// the construction is defined for 3-CNF (narrower clauses are padded).
	ErrClauseTooWide = errors.New("reduce: clause wider than 3 literals")

	// ErrNegativeTarget indicates a negative subset-sum target.
	ErrNegativeTarget = errors.New("reduce: negative target")

	// ErrNegativeValue indicates a negative subset-sum value.
	ErrNegativeValue = errors.New("reduce: negative value")
)
