package plane

// Test bridge: expose the seeded RNG factory so plane_test can verify the
// fixed draw-order contract (x then y, per town) against the raw stream
// without widening the production API.
var RNGFromSeed = rngFromSeed
