package subsetsum_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/npcomplete/subsetsum"
	"github.com/katalvlaran/npcomplete/verify"
	"github.com/stretchr/testify/require"
)

type solver func([]int, int) (subsetsum.Result, error)

var solvers = map[string]solver{
	"BruteForce":   subsetsum.BruteForce,
	"MeetInMiddle": subsetsum.MeetInMiddle,
}

func TestSolvers_KnownInstance(t *testing.T) {
	// values=[3,7,9,10], target=19 → e.g. {9,10} (indices 2,3)
	values := []int{3, 7, 9, 10}
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			res, err := solve(values, 19)
			require.NoError(t, err)
			require.True(t, res.Found)
			require.True(t, verify.CheckSubsetSum(values, res.Witness, 19))
		})
	}
}

func TestSolvers_TargetZeroIsEmptySubset(t *testing.T) {
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			res, err := solve([]int{5, 8}, 0)
			require.NoError(t, err)
			require.True(t, res.Found)
			require.Empty(t, res.Witness)
		})
	}
}

func TestSolvers_Infeasible(t *testing.T) {
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			res, err := solve([]int{2, 4, 6}, 5)
			require.NoError(t, err)
			require.False(t, res.Found)
			require.Nil(t, res.Witness)
		})
	}
}

func TestSolvers_EmptyInstance(t *testing.T) {
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			res, err := solve(nil, 0)
			require.NoError(t, err)
			require.True(t, res.Found)

			res, err = solve(nil, 1)
			require.NoError(t, err)
			require.False(t, res.Found)
		})
	}
}

func TestSolvers_DuplicateValuesWitnessByIndex(t *testing.T) {
	values := []int{4, 4, 4}
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			res, err := solve(values, 8)
			require.NoError(t, err)
			require.True(t, res.Found)
			require.Len(t, res.Witness, 2)
			require.True(t, verify.CheckSubsetSum(values, res.Witness, 8))
		})
	}
}

func TestSolvers_MalformedInstances(t *testing.T) {
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			_, err := solve([]int{1, 2}, -1)
			require.ErrorIs(t, err, subsetsum.ErrNegativeTarget)

			_, err = solve([]int{1, -2}, 1)
			require.ErrorIs(t, err, subsetsum.ErrNegativeValue)

			_, err = solve(make([]int, 63), 0)
			require.ErrorIs(t, err, subsetsum.ErrTooManyItems)
		})
	}
}

func TestBruteForce_FirstMaskWins(t *testing.T) {
	// two witnesses for 5: {0,1} (mask 3) and {2} (mask 4); mask order
	// makes {0,1} the unique expected answer.
	res, err := subsetsum.BruteForce([]int{2, 3, 5}, 5)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, res.Witness)
}

func TestSolvers_CrossAgreement_Exhaustive(t *testing.T) {
	// every instance over small value tuples and every reachable target
	values := []int{1, 2, 2, 5, 9, 3}
	total := 0
	for _, v := range values {
		total += v
	}
	for target := 0; target <= total+1; target++ {
		b, err := subsetsum.BruteForce(values, target)
		require.NoError(t, err)
		m, err := subsetsum.MeetInMiddle(values, target)
		require.NoError(t, err)
		require.Equal(t, b.Found, m.Found, "target %d", target)
		if b.Found {
			require.True(t, verify.CheckSubsetSum(values, b.Witness, target))
			require.True(t, verify.CheckSubsetSum(values, m.Witness, target))
		}
	}
}

func TestSolvers_CrossAgreement_Seeded(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := 1 + r.Intn(18)
		values := make([]int, n)
		sum := 0
		for i := range values {
			values[i] = 1 + r.Intn(40)
			sum += values[i]
		}
		target := r.Intn(sum + 2)

		b, err := subsetsum.BruteForce(values, target)
		require.NoError(t, err)
		m, err := subsetsum.MeetInMiddle(values, target)
		require.NoError(t, err)
		require.Equal(t, b.Found, m.Found, "trial %d values %v target %d", trial, values, target)
		if b.Found {
			require.True(t, verify.CheckSubsetSum(values, b.Witness, target))
			require.True(t, verify.CheckSubsetSum(values, m.Witness, target))
		}
	}
}

func TestMeetInMiddle_Deterministic(t *testing.T) {
	values := []int{7, 1, 4, 4, 9, 2, 6}
	first, err := subsetsum.MeetInMiddle(values, 12)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := subsetsum.MeetInMiddle(values, 12)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
