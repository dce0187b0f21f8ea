// Package tourset is a brute-force census of round-trip tours over small
// planar TSP instances — every visiting order enumerated, measured, and
// collapsed into direction-independent route classes.
//
// 🚀 What is tourset?
//
//	A small, deterministic reference generator that brings together:
//		• permute/    — in-place lexicographic next-permutation engine
//		• plane/      — seeded uniform town sampling & Euclidean distance matrices
//		• enumerate/  — tour-length accumulation, reversal-invariant tour keys,
//		                and the deduplicating census (one length per undirected route)
//		• cmd/tourset — the command-line front end that prints each route key
//		                with its length normalized against the global minimum
//
// ✨ Why choose tourset?
//
//   - Exhaustive by design – every (N−1)! directed tour is visited exactly once,
//     in strictly increasing lexical order
//   - Deterministic – same (n, size, seed) triple ⇒ identical output, always
//   - Numerically careful – compensated summation and math.Hypot keep tiny
//     length differences meaningful after normalization
//   - Honest about limits – instances are hard-capped where the 4-bit key
//     packing (and the factorial itself) stops making sense
//
// tourset is not a TSP solver: there are no heuristics, no pruning and no
// concurrency. It exists to produce exact, reproducible route-length
// landscapes for instances small enough to enumerate completely.
//
//	go get github.com/katalvlaran/tourset
package tourset
