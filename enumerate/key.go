package enumerate

const (
	// keyBits is the packed width of one town index inside a canonical key.
	keyBits = 4

	// maxTourLen is the largest tour encodable in a 64-bit key at keyBits
	// per position: 64 / 4 = 16 positions.
	maxTourLen = 64 / keyBits

	// MaxTowns is the largest instance (start town included) whose tours
	// fit the canonical key encoding. Widening the key is the only way to
	// raise this; validation rejects larger matrices with ErrTooManyTowns.
	MaxTowns = maxTourLen + 1
)

// EncodeKey maps a tour to its canonical 64-bit key, invariant under full
// reversal of the visiting order.
//
// Packing: each index, zero-based (idx−1), occupies keyBits bits of the
// key, most significant first, in traversal order. The traversal
// direction is chosen from the tour's endpoints: forward when
// tour[0] < tour[last], reverse otherwise. A tour and its exact reverse
// therefore always produce the identical key — the intended many-to-one
// collapse onto undirected routes. Within each scan direction the packing
// is injective, so no other collisions exist.
//
// Contracts (enforced upstream by validation, not re-checked here):
//   - len(tour) ≤ 16 and every index ∈ [1, 16].
//
// The empty tour (single-town instance) encodes to key 0.
//
// Complexity: O(n) time, O(1) space, zero allocations.
func EncodeKey(tour []int) uint64 {
	var (
		n   = len(tour)
		key uint64
		i   int
	)
	if n == 0 {
		return 0
	}

	if tour[0] < tour[n-1] {
		// Forward scan: first element lands in the most significant field.
		for i = 0; i < n; i++ {
			key = key<<keyBits | uint64(tour[i]-1)
		}
	} else {
		// Reverse scan: the element that leads the reversed tour becomes
		// most significant, making encode(T) == encode(reverse(T)).
		for i = n - 1; i >= 0; i-- {
			key = key<<keyBits | uint64(tour[i]-1)
		}
	}

	return key
}
