// Package enumerate_test — benchmarks for the census core.
//
// Policy:
//   - Deterministic sampled geometry, fixed seed (seedDet).
//   - Instances built outside the timer; only the algorithmic core is
//     measured. Sizes finish comfortably on CI.
package enumerate_test

import (
	"testing"

	"github.com/katalvlaran/tourset/enumerate"
	"github.com/katalvlaran/tourset/plane"
)

// benchDist builds a deterministic sampled instance of n towns.
func benchDist(b *testing.B, n int) [][]float64 {
	b.Helper()
	towns, err := plane.Towns(n, sizeDet, seedDet)
	if err != nil {
		b.Fatalf("towns: %v", err)
	}

	return plane.DistMatrix(towns)
}

// BenchmarkRun_n8 measures a full 7! = 5040-tour census.
func BenchmarkRun_n8(b *testing.B) {
	dist := benchDist(b, 8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := enumerate.Run(dist); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRun_n9 measures a full 8! = 40320-tour census.
func BenchmarkRun_n9(b *testing.B) {
	dist := benchDist(b, 9)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := enumerate.Run(dist); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkTourLength_n12 measures the per-tour accumulator in isolation.
func BenchmarkTourLength_n12(b *testing.B) {
	dist := benchDist(b, 12)
	tour := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := enumerate.TourLength(dist, tour); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEncodeKey_n16 measures key packing at the maximum tour width.
func BenchmarkEncodeKey_n16(b *testing.B) {
	tour := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = enumerate.EncodeKey(tour)
	}
}
