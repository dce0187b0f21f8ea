// Package enumerate is the exhaustive core of tourset: it walks every
// directed tour of a small TSP instance and aggregates one length per
// undirected route.
//
// A tour is the visiting order of towns 1..N−1; town 0 is the implicit
// fixed start and end of the round trip. The driver owns a single
// mutable tour buffer, initialized to the identity ordering and advanced
// in place by permute.Next, so the (N−1)!-step loop never allocates per
// step.
//
// For each tour state — the identity included — Run:
//
//   - accumulates the round-trip length with a compensated (Neumaier)
//     sum, whose rounding error stays bounded independent of term count;
//   - derives a reversal-invariant canonical key (EncodeKey): a tour and
//     its mirror-reverse always collide to the same key, intentionally;
//   - stores the length under that key with insert-or-replace semantics —
//     the last directed tour in enumeration order wins, never "first" and
//     never "minimum";
//   - tracks the global minimum over every directed tour visited.
//
// The census is meant to be reported as (key, length − Min) pairs; map
// iteration order is explicitly unspecified.
//
// Limits: the key packs each town index into 4 bits of a uint64, which
// hard-caps instances at MaxTowns (17 towns, i.e. 16 tour positions).
// Larger matrices are rejected with ErrTooManyTowns rather than silently
// producing colliding keys.
//
// Complexity: O((N−1)!·N) time for a full run — brute force by design;
// use it only on instances small enough to enumerate completely.
package enumerate
