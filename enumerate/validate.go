// Package enumerate - distance-matrix validation.
//
// Run validates the whole matrix once, upfront, so the factorial hot loop
// can trust every entry it reads. Deterministic, side-effect free, only
// sentinel errors from errors.go.
package enumerate

import "math"

// validateDistMatrix verifies shape and values of dist and returns the
// matrix order n on success.
//
// Stages:
//  1. Presence: nil ⇒ ErrNilMatrix; 0×0 ⇒ ErrNoTowns (no start town to
//     anchor a round trip).
//  2. Size: n > MaxTowns ⇒ ErrTooManyTowns (canonical key packing limit,
//     see key.go).
//  3. Per entry: row length (ErrNonSquare), finiteness (ErrNaNInf),
//     non-negativity (ErrNegativeDistance), near-zero diagonal
//     (ErrNonZeroDiagonal) and symmetry (ErrAsymmetry), both within eps.
//
// Complexity: O(n²) time, O(1) space.
func validateDistMatrix(dist [][]float64, eps float64) (int, error) {
	if dist == nil {
		return 0, ErrNilMatrix
	}

	var n = len(dist)
	if n == 0 {
		return 0, ErrNoTowns
	}
	if n > MaxTowns {
		return 0, ErrTooManyTowns
	}

	var (
		i int
		j int
		w float64
	)
	// Shape first: the value pass below reads the transposed entry
	// dist[j][i], so every row length must be known good before any
	// cross-row access.
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, ErrNonSquare
		}
	}

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w = dist[i][j]
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return 0, ErrNaNInf
			}
			if w < 0 {
				return 0, ErrNegativeDistance
			}
			if i == j && w > eps {
				return 0, ErrNonZeroDiagonal
			}
			// Each unordered pair is checked once, from its upper triangle.
			if j > i && math.Abs(w-dist[j][i]) > eps {
				return 0, ErrAsymmetry
			}
		}
	}

	return n, nil
}
