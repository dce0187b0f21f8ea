// Package enumerate_test provides lightweight helpers shared across the
// *_test.go files in this package. Intentionally minimal and stdlib-only.
package enumerate_test

import (
	"slices"

	"github.com/katalvlaran/tourset/permute"
)

const (
	// seedDet is the deterministic seed for sampled instances.
	seedDet = uint64(1)

	// sizeDet is the plane size for sampled instances.
	sizeDet = 10.0
)

// triangleDist is the 3-4-5 right triangle: towns (0,0), (3,0), (0,4).
// Every tour of this instance has length 3+5+4 = 12.
func triangleDist() [][]float64 {
	return [][]float64{
		{0, 3, 4},
		{3, 0, 5},
		{4, 5, 0},
	}
}

// allTours returns every permutation of [1..k] as independent slices, in
// lexical order — the reference enumeration tests compare against.
func allTours(k int) [][]int {
	var (
		seq = permute.Identity(k)
		out [][]int
	)
	for {
		out = append(out, slices.Clone(seq))
		if !permute.Next(seq) {
			break
		}
	}

	return out
}

// reversed returns an independent reversed copy of tour.
func reversed(tour []int) []int {
	out := slices.Clone(tour)
	slices.Reverse(out)

	return out
}

// factorial computes k! for small k.
func factorial(k int) int {
	f := 1
	for i := 2; i <= k; i++ {
		f *= i
	}

	return f
}
