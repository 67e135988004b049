package subsetsum_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/npcomplete/gen"
	"github.com/katalvlaran/npcomplete/subsetsum"
)

// The two engines meet the same seeded instance: 24 values in 1..1000 with a
// feasible target. BruteForce walks up to 2^24 masks while MeetInMiddle only
// sorts and probes 2^12 half-sums, so the pair makes the split visible.

func benchInstance(b *testing.B) ([]int, int) {
	b.Helper()
	values, target, err := gen.RandomSubsetSum(rand.New(rand.NewSource(7)), 24, 1000)
	if err != nil {
		b.Fatal(err)
	}
	return values, target
}

func BenchmarkBruteForce_24(b *testing.B) {
	values, target := benchInstance(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := subsetsum.BruteForce(values, target); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMeetInMiddle_24(b *testing.B) {
	values, target := benchInstance(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := subsetsum.MeetInMiddle(values, target); err != nil {
			b.Fatal(err)
		}
	}
}
