// Package enumerate: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. All entry points
// return these sentinels and tests match them via errors.Is. No function
// in this package panics on user input; panics are reserved for
// nonsensical option constructor arguments (programmer error).
package enumerate

import "errors"

// Every message is prefixed with "enumerate: ..." for consistency and to
// allow easy grepping across logs. Do not %w-wrap these sentinels when
// returning directly.

var (
	// ErrNilMatrix indicates that a nil distance matrix was passed in.
	ErrNilMatrix = errors.New("enumerate: nil distance matrix")

	// ErrNoTowns indicates an empty (0×0) distance matrix: with no start
	// town there is no round trip to enumerate.
	ErrNoTowns = errors.New("enumerate: no towns")

	// ErrNonSquare signals that the distance matrix rows do not all match
	// the matrix order.
	ErrNonSquare = errors.New("enumerate: distance matrix is not square")

	// ErrAsymmetry signals that the matrix violated symmetry within the
	// configured tolerance (see WithSymmetryEps).
	ErrAsymmetry = errors.New("enumerate: distance matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals a self-distance away from zero beyond the
	// configured tolerance.
	ErrNonZeroDiagonal = errors.New("enumerate: diagonal not zero within eps")

	// ErrNaNInf signals a NaN or ±Inf distance where finite values are
	// required.
	ErrNaNInf = errors.New("enumerate: NaN or Inf distance encountered")

	// ErrNegativeDistance signals a negative distance entry.
	ErrNegativeDistance = errors.New("enumerate: negative distance encountered")

	// ErrIndexOutOfRange indicates a tour index outside [0, n).
	ErrIndexOutOfRange = errors.New("enumerate: tour index out of range")

	// ErrTooManyTowns is the hard configuration limit of the canonical key
	// encoding: more than MaxTowns towns cannot be packed into 4-bit
	// fields of a 64-bit key, and silently colliding keys are not
	// acceptable.
	ErrTooManyTowns = errors.New("enumerate: instance too large for key encoding")
)
