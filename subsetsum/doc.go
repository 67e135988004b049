// Package subsetsum implements two exact Subset Sum solvers over
// non-negative integer multisets:
//
//   - BruteForce — enumerates all 2^n inclusion masks in ascending order
//     and short-circuits on the first hit. O(n·2^n) time, O(1) auxiliary
//     space beyond the witness.
//   - MeetInMiddle — the Horowitz–Sahni split: enumerate the subset sums of
//     each half, sort one side, binary-search the complement of the other.
//     O(2^(n/2)·n) time, O(2^(n/2)) space.
//
// Witnesses are ascending index slices, not values, so duplicate values
// stay distinguishable. Both solvers agree on feasibility for every
// instance; when the target is 0 the empty witness (mask 0) wins first.
//
// Instances with more than 62 values are rejected up front with
// ErrTooManyItems: inclusion masks must fit a signed 64-bit integer, and
// 2^62 enumeration steps are far past any practical budget anyway.
package subsetsum
