package subsetsum

import "sort"

// halfSum is one enumerated subset of a half: its sum and inclusion mask.
type halfSum struct {
	sum  int
	mask uint64
}

// MeetInMiddle solves Subset Sum with the Horowitz–Sahni split.
//
// The values are cut into a first half of ⌈n/2⌉ and a second half of ⌊n/2⌋
// elements. All subset sums of both halves are enumerated; the second half
// is sorted by (sum, mask) and, for every first-half sum s, the complement
// target−s is located by binary search. Ties on equal sums are resolved by
// the smallest mask, so the returned witness is deterministic; any matching
// pair is an acceptable witness, the first found wins.
//
// Contract: same preconditions and agreement on feasibility as BruteForce;
// Result.Witness is a concrete ascending index set, never just a yes/no.
//
// Complexity: O(2^(n/2)·(n + log 2^(n/2))) time, O(2^(n/2)) space.
//
// Errors: ErrNegativeTarget, ErrNegativeValue, ErrTooManyItems.
func MeetInMiddle(values []int, target int) (Result, error) {
	if err := validate(values, target); err != nil {
		return Result{}, err
	}

	n := len(values)
	lo := (n + 1) / 2 // first half size ⌈n/2⌉
	hi := n - lo

	first := enumerate(values[:lo])
	second := enumerate(values[lo:])
	sort.Slice(second, func(i, j int) bool {
		if second[i].sum != second[j].sum {
			return second[i].sum < second[j].sum
		}

		return second[i].mask < second[j].mask
	})

	res := Result{Explored: len(first) + len(second)}
	for _, a := range first {
		need := target - a.sum
		if need < 0 {
			continue // values are non-negative; no second-half subset helps
		}
		i := sort.Search(len(second), func(j int) bool { return second[j].sum >= need })
		if i == len(second) || second[i].sum != need {
			continue
		}
		res.Found = true
		w := witnessFromMask(make([]int, 0, n), a.mask, 0, lo)
		res.Witness = witnessFromMask(w, second[i].mask, lo, hi)

		return res, nil
	}

	return res, nil
}

// enumerate lists every subset of half as a (sum, mask) pair, masks ascending.
func enumerate(half []int) []halfSum {
	out := make([]halfSum, 0, 1<<uint(len(half)))
	for mask := uint64(0); mask < 1<<uint(len(half)); mask++ {
		sum := 0
		for i, v := range half {
			if mask&(1<<uint(i)) != 0 {
				sum += v
			}
		}
		out = append(out, halfSum{sum: sum, mask: mask})
	}

	return out
}
