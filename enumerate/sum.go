// Package enumerate — tour-length accumulation.
//
// The census normalizes every recorded length against the global minimum,
// so downstream consumers look at tiny differences between sums of up to
// N terms. Naive left-to-right addition lets rounding error accumulate
// with the term count and can dominate those differences (inconsistent or
// negative near-zero results). The accumulator here is a Neumaier
// (improved Kahan–Babuška) compensated sum: it tracks lost low-order bits
// in a running correction, keeping the error bound independent of how
// many edges a tour has.
package enumerate

import "math"

// neumaierSum is a compensated floating-point accumulator.
// The zero value is ready to use.
type neumaierSum struct {
	sum float64 // running naive sum
	c   float64 // running compensation for lost low-order bits
}

// add folds x into the accumulator, capturing the low-order bits the
// naive addition discards. The branch picks the operand whose tail was
// truncated (Neumaier's refinement over plain Kahan, which mishandles
// terms larger than the running sum).
//
// Complexity: O(1).
func (s *neumaierSum) add(x float64) {
	var t = s.sum + x
	if math.Abs(s.sum) >= math.Abs(x) {
		s.c += (s.sum - t) + x
	} else {
		s.c += (x - t) + s.sum
	}
	s.sum = t
}

// value returns the compensated total.
//
// Complexity: O(1).
func (s *neumaierSum) value() float64 {
	return s.sum + s.c
}

// TourLength computes the total round-trip length of tour over dist:
// dist[0][tour[0]] + Σ dist[tour[i]][tour[i+1]] + dist[tour[last]][0],
// accumulated with a compensated sum.
//
// Contracts:
//   - dist must be square (n×n) with n ≥ 1; tour indices within [0, n).
//   - Entries along the tour must be finite and non-negative.
//   - An empty tour is the degenerate single-town round trip: length 0.
//
// Guards mirror the validation sentinels even though Run validates the
// whole matrix upfront; the function is exported and must not panic on
// misuse.
//
// Complexity: O(n) time, O(1) space.
func TourLength(dist [][]float64, tour []int) (float64, error) {
	var n = len(dist)
	if n == 0 {
		return 0, ErrNilMatrix
	}
	if len(tour) == 0 {
		// Round trip that never leaves the start town.
		return 0, nil
	}

	var (
		acc  neumaierSum
		prev = 0 // the implicit start town
		i    int
		v    int
		w    float64
	)
	// One pass over the tour plus the closing edge back to town 0.
	for i = 0; i <= len(tour); i++ {
		if i < len(tour) {
			v = tour[i]
		} else {
			v = 0
		}
		if v < 0 || v >= n {
			return 0, ErrIndexOutOfRange
		}
		if len(dist[prev]) != n {
			return 0, ErrNonSquare
		}

		w = dist[prev][v]
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, ErrNaNInf
		}
		if w < 0 {
			return 0, ErrNegativeDistance
		}

		acc.add(w)
		prev = v
	}

	return acc.value(), nil
}
