package permute

import "cmp"

// Next rearranges seq in place into the lexicographically next-greater
// permutation of its current elements and reports whether such a
// permutation exists. When it returns false, seq is unchanged.
//
// Repeated calls starting from the ascending ordering yield every
// permutation of the element multiset exactly once, in strictly
// increasing lexical order; the final call on the descending ordering
// returns false.
//
// Contracts:
//   - seq may hold duplicates; enumeration is over the distinct multiset
//     orderings in that case.
//   - No allocation; mutation is a single swap plus a suffix reversal.
//
// Complexity: amortized O(1) per call, O(n) worst case.
func Next[S ~[]E, E cmp.Ordered](seq S) bool {
	// Sequences shorter than two elements have exactly one permutation.
	if len(seq) < 2 {
		return false
	}

	// Step 1: walk left from the end across the longest weakly
	// decreasing suffix; seq[i-1] is the pivot to bump.
	var i = len(seq) - 1
	for i > 0 && seq[i-1] >= seq[i] {
		i--
	}

	// The entire sequence is weakly decreasing: last permutation reached.
	if i == 0 {
		return false
	}

	// Step 2: find the rightmost element strictly greater than the pivot.
	// The suffix is sorted descending, so this is the pivot's smallest
	// strict successor.
	var j = len(seq) - 1
	for seq[j] <= seq[i-1] {
		j--
	}

	// Step 3: swap the pivot with its successor.
	seq[i-1], seq[j] = seq[j], seq[i-1]

	// Step 4: reverse the suffix — still descending after the swap —
	// into the smallest (ascending) ordering of the remaining positions.
	for l, r := i, len(seq)-1; l < r; l, r = l+1, r-1 {
		seq[l], seq[r] = seq[r], seq[l]
	}

	return true
}

// Identity returns the ascending sequence [1, 2, …, n] — the
// lexicographically first tour over towns 1..n, and the canonical
// starting point for a full Next enumeration. n ≤ 0 yields an empty,
// non-nil slice.
//
// Complexity: O(n) time, O(n) space.
func Identity(n int) []int {
	if n < 0 {
		n = 0
	}
	var (
		out = make([]int, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i] = i + 1
	}

	return out
}
