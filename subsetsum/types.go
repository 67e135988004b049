// SPDX-License-Identifier: MIT
// Package: npcomplete/subsetsum
//
// types.go — result type and sentinels for the Subset Sum solvers.

package subsetsum

import "errors"

var (
	// ErrNegativeTarget indicates a negative target sum; instances are
	// rejected before any enumeration begins.
	ErrNegativeTarget = errors.New("subsetsum: negative target")

	// ErrNegativeValue indicates a negative element in the value multiset.
	ErrNegativeValue = errors.New("subsetsum: negative value")

	// ErrTooManyItems indicates more than 62 values, which would overflow
	// the int64 inclusion masks both solvers enumerate.
	ErrTooManyItems = errors.New("subsetsum: too many items for mask enumeration")
)

// maxItems caps instance size so that 1<<n fits comfortably in an int64.
const maxItems = 62

// Result is the outcome of a Subset Sum solve.
type Result struct {
	// Found reports whether some subset sums to the target.
	Found bool

	// Witness lists the contributing indices in ascending order when Found;
	// nil otherwise. Indices, not values: duplicates stay distinguishable.
	Witness []int

	// Explored counts enumeration steps: inclusion masks for BruteForce,
	// half-subset sums for MeetInMiddle.
	Explored int
}

// validate applies the shared structural preconditions.
func validate(values []int, target int) error {
	if target < 0 {
		return ErrNegativeTarget
	}
	if len(values) > maxItems {
		return ErrTooManyItems
	}
	for _, v := range values {
		if v < 0 {
			return ErrNegativeValue
		}
	}

	return nil
}

// witnessFromMask expands an inclusion mask over offset..offset+width-1
// into ascending indices appended to dst.
func witnessFromMask(dst []int, mask uint64, offset, width int) []int {
	for i := 0; i < width; i++ {
		if mask&(1<<uint(i)) != 0 {
			dst = append(dst, offset+i)
		}
	}

	return dst
}
