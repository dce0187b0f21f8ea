// Package enumerate: functional configuration for Run.
//
// Design goals (mirrors the rest of the module):
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: constructors panic only on nonsensical values
//     (programmer error); user-data problems surface as sentinels.
//   - Options fields are unexported; public entry points consume ...Option.
package enumerate

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSymmetryEps is the tolerance for the symmetry and zero-diagonal
	// structural checks. Euclidean matrices built by plane.DistMatrix are
	// exactly symmetric, so the default is strict.
	DefaultSymmetryEps = 1e-12

	// maxAutoCapacity caps the automatically derived census map pre-size.
	// (N−1)!/2 overtakes any reasonable allocation long before the key
	// packing limit; pre-sizing is a rehashing optimization, never a
	// correctness concern.
	maxAutoCapacity = 1 << 22
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsInvalid      = "enumerate: WithSymmetryEps: eps must be finite, non-negative"
	panicCapacityInvalid = "enumerate: WithCapacityHint: hint must be non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly; the last
// writer wins.
type Option func(*options)

// options stores the effective configuration after applying setters.
type options struct {
	symmetryEps  float64 // structural tolerance; DefaultSymmetryEps
	capacityHint int     // census map pre-size; 0 ⇒ derive from n
}

// defaultOptions returns the documented zero-configuration behavior.
func defaultOptions() options {
	return options{
		symmetryEps:  DefaultSymmetryEps,
		capacityHint: 0,
	}
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) options {
	var o = defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ---------- Constructors (WithX) ----------

// WithSymmetryEps sets the tolerance used by the symmetry and
// zero-diagonal checks during validation. Larger eps admits approximately
// symmetric matrices (e.g. distances rounded by an external producer).
//
// Panics on NaN, ±Inf or negative eps.
//
// Complexity: O(1).
func WithSymmetryEps(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsInvalid)
	}

	return func(o *options) { o.symmetryEps = eps }
}

// WithCapacityHint overrides the pre-sizing of the census map. hint == 0
// restores the automatic (N−1)!/2 derivation (capped internally); a
// positive hint is used verbatim. Purely a performance knob.
//
// Panics on negative hint.
//
// Complexity: O(1).
func WithCapacityHint(hint int) Option {
	if hint < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *options) { o.capacityHint = hint }
}

// autoCapacity derives the census map pre-size for an n-town instance:
// (n−1)!/2 distinct undirected routes in the collision-free worst case,
// capped by maxAutoCapacity.
//
// Complexity: O(n).
func autoCapacity(n int) int {
	var c = 1
	for k := 2; k < n; k++ {
		c *= k
		if c >= maxAutoCapacity {
			return maxAutoCapacity
		}
	}
	if n >= 3 {
		c /= 2
	}

	return c
}
