// Package plane: sentinel error set.
// All errors returned by this package are the sentinels below; callers
// match them via errors.Is. Messages are prefixed "plane: ..." for
// consistent grepping across logs.
package plane

import "errors"

var (
	// ErrNegativeCount is returned by Towns when the requested town count
	// is negative. Zero is a valid (empty) instance.
	ErrNegativeCount = errors.New("plane: town count must be non-negative")

	// ErrNonPositiveSize is returned by Towns when a non-empty instance is
	// requested with a plane size that is not a positive finite real.
	ErrNonPositiveSize = errors.New("plane: plane size must be positive and finite")
)
