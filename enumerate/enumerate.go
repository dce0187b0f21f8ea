// Package enumerate - the enumeration driver and aggregator.
//
// Run is the canonical entry point: validate once, then drive the
// permutation engine from the identity tour until exhausted, folding
// every directed tour into the census. The loop is a post-order check —
// each state (the identity included) is processed before the next
// advance — and mutates a single tour buffer in place, so the factorial
// walk performs no per-step allocation.
package enumerate

import (
	"math"

	"github.com/katalvlaran/tourset/permute"
)

// Census holds the aggregated outcome of a full enumeration.
type Census struct {
	// Lengths maps each canonical undirected-route key to the length
	// recorded by the LAST directed tour (in enumeration order) that
	// produced that key. For symmetric matrices the two members of a
	// reversal pair have equal length, so the policy is invisible there;
	// it is nonetheless insert-or-replace by contract, not keep-minimum.
	Lengths map[uint64]float64

	// Min is the smallest length over every directed tour visited —
	// tracked before deduplication, not derived from Lengths.
	Min float64

	// Visited counts directed tours processed: (N−1)! for N ≥ 1, with the
	// degenerate single-town instance contributing exactly one empty tour.
	Visited uint64
}

// Normalized returns a fresh map of length − Min per key, the shape the
// reporter prints. Iteration order over the result is unspecified.
//
// Complexity: O(|Lengths|) time and space.
func (c Census) Normalized() map[uint64]float64 {
	var out = make(map[uint64]float64, len(c.Lengths))
	for key, length := range c.Lengths {
		out[key] = length - c.Min
	}

	return out
}

// Run exhaustively enumerates every tour over the towns of dist and
// returns the resulting census.
//
// Stages:
//  1. Validate dist (square, symmetric within eps, zero diagonal, finite,
//     non-negative, within the MaxTowns key limit); see validate.go.
//  2. Drive: tour := [1 … n−1]; process the current state (length via the
//     compensated accumulator, key via EncodeKey, insert-or-replace into
//     Lengths, fold into Min); advance with permute.Next until it reports
//     false.
//
// The identity tour is always processed once before the first advance,
// so a single-town instance (empty tour, zero length, key 0) and a
// two-town instance (one tour) both yield exactly one census entry.
//
// Errors: strict sentinels from errors.go; on error the census is empty.
//
// Complexity: O(n²) validation + O((n−1)!·n) enumeration; memory is the
// census map plus one n−1 tour buffer.
func Run(dist [][]float64, opts ...Option) (Census, error) {
	var o = gatherOptions(opts...)

	n, err := validateDistMatrix(dist, o.symmetryEps)
	if err != nil {
		return Census{}, err
	}

	var capacity = o.capacityHint
	if capacity == 0 {
		capacity = autoCapacity(n)
	}
	var census = Census{
		Lengths: make(map[uint64]float64, capacity),
		Min:     math.Inf(1),
	}

	// The single mutable tour buffer, reused across the whole walk.
	var (
		tour   = permute.Identity(n - 1)
		length float64
	)
	for {
		length, err = TourLength(dist, tour)
		if err != nil {
			// Unreachable after validation; kept so the contract holds even
			// if a caller mutates dist between stages.
			return Census{}, err
		}

		// Insert-or-replace: the last directed tour for a key wins.
		census.Lengths[EncodeKey(tour)] = length
		if length < census.Min {
			census.Min = length
		}
		census.Visited++

		if !permute.Next(tour) {
			break
		}
	}

	return census, nil
}
