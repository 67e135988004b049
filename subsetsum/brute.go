package subsetsum

// BruteForce enumerates every inclusion mask in ascending order and returns
// the first subset whose values sum to target.
//
// Contract:
//   - values must be non-negative, at most 62 of them; target ≥ 0.
//   - Result.Witness is the lexicographically first witness in mask order;
//     for target 0 that is the empty subset.
//   - (Result{Found:false}, nil) means the full 2^n space was exhausted.
//
// Complexity: O(n·2^n) time, O(1) auxiliary space beyond the witness.
//
// Errors: ErrNegativeTarget, ErrNegativeValue, ErrTooManyItems.
func BruteForce(values []int, target int) (Result, error) {
	if err := validate(values, target); err != nil {
		return Result{}, err
	}

	n := len(values)
	var res Result
	for mask := uint64(0); mask < 1<<uint(n); mask++ {
		res.Explored++
		sum := 0
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				sum += values[i]
			}
		}
		if sum == target {
			res.Found = true
			res.Witness = witnessFromMask(make([]int, 0, n), mask, 0, n)

			return res, nil
		}
	}

	return res, nil
}
