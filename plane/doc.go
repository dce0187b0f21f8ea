// Package plane provides the geometry side of a tour census: seeded
// uniform town sampling on a square plane and the Euclidean distance
// matrix derived from a point set.
//
// Determinism is the governing design rule: Towns is a pure function of
// (n, size, seed) — the seed is avalanched through a SplitMix64 mixer
// into a math/rand source, and exactly 2n draws are consumed in a fixed
// order (x then y, per town, in town-index order). The same triple
// always reproduces the same instance on every platform.
//
// DistMatrix builds the full symmetric n×n matrix once, up front, so the
// enumeration hot loop never re-derives a distance from coordinates.
// Entries are computed with math.Hypot to stay accurate for extreme
// coordinate magnitudes.
//
// The package does not log and does not panic on user input; invalid
// arguments surface as the sentinel errors in errors.go.
package plane
