package enumerate

// Test bridge: expose private kernels and panic messages to enumerate_test
// without widening the production API.

// AutoCapacity exposes the census map pre-sizing derivation.
var AutoCapacity = autoCapacity

// CompensatedSum folds terms through the private Neumaier accumulator,
// letting tests probe compensation with signed adversarial magnitudes
// that TourLength (non-negative distances only) can never produce.
func CompensatedSum(terms []float64) float64 {
	var s neumaierSum
	for _, t := range terms {
		s.add(t)
	}

	return s.value()
}

// Panic message exports to avoid magic strings in tests.
const (
	PanicEpsInvalid      = panicEpsInvalid
	PanicCapacityInvalid = panicCapacityInvalid
)
