// Package permute provides the in-place lexicographic next-permutation
// primitive that drives exhaustive enumeration.
//
// The single hot-path entry point is Next: it rearranges a mutable slice
// into the lexicographically next-greater permutation of its current
// elements and reports whether one exists. Called repeatedly from the
// ascending (identity) ordering, it visits every permutation of the
// element multiset exactly once, in strictly increasing lexical order,
// without allocating.
//
//   - Complexity: amortized O(1) per call, O(n) worst case per call,
//     n! calls to exhaust n distinct elements.
//   - Sequences with fewer than two elements have a single permutation;
//     Next reports false for them without mutation.
//   - Once the last permutation is reached, Next reports false and leaves
//     the slice unchanged — it never wraps back to the first ordering.
//
// Use this package when you need to walk a permutation space completely
// and cheaply, e.g. brute-force tour enumeration (see enumerate).
package permute
