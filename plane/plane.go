package plane

import "math"

// Point is a town position on the sampling plane. Points are immutable
// once generated; the distance matrix is the only consumer.
type Point struct {
	X float64
	Y float64
}

// Towns samples n town positions uniformly from the square [0,size)².
//
// The draw order is fixed and part of the contract: x then y, per town,
// in town-index order — exactly 2n draws from the seeded stream. This
// keeps instances bit-for-bit reproducible from the (n, size, seed)
// triple alone.
//
// Errors:
//   - ErrNegativeCount when n < 0.
//   - ErrNonPositiveSize when n > 0 and size is not a positive finite real.
//
// n == 0 returns an empty, non-nil slice; size is not inspected then.
//
// Complexity: O(n) time, O(n) space.
func Towns(n int, size float64, seed uint64) ([]Point, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if n > 0 && (size <= 0 || math.IsNaN(size) || math.IsInf(size, 0)) {
		return nil, ErrNonPositiveSize
	}

	var (
		rng   = rngFromSeed(seed)
		towns = make([]Point, n)
		i     int
	)
	for i = 0; i < n; i++ {
		// Float64 yields [0,1); scaling preserves the [0,size) contract.
		towns[i].X = rng.Float64() * size
		towns[i].Y = rng.Float64() * size
	}

	return towns, nil
}

// DistMatrix computes the full n×n Euclidean distance matrix of towns.
//
// Properties (by construction, not re-checked):
//   - symmetric: dist[a][b] == dist[b][a] exactly (Hypot is sign-blind),
//   - zero diagonal,
//   - all entries finite and non-negative for finite coordinates.
//
// math.Hypot avoids the overflow/underflow of naive squaring for extreme
// coordinate magnitudes.
//
// Complexity: O(n²) time, O(n²) space.
func DistMatrix(towns []Point) [][]float64 {
	var (
		n    = len(towns)
		dist = make([][]float64, n)
		a    int
		b    int
	)
	for a = 0; a < n; a++ {
		dist[a] = make([]float64, n)
		for b = 0; b < n; b++ {
			dist[a][b] = math.Hypot(towns[a].X-towns[b].X, towns[a].Y-towns[b].Y)
		}
	}

	return dist
}
