package blockfall

import "math/rand"

// ShapeSource picks the next piece. It receives the number of templates and
// returns an index; the board reduces out-of-range results modulo n.
type ShapeSource func(n int) int

// UniformSource picks every template with equal probability.
func UniformSource(rng *rand.Rand) ShapeSource {
	return func(n int) int {
		return rng.Intn(n)
	}
}

// SequenceSource replays the given indices in order and then repeats them.
// It is meant for tests and scripted demos.
func SequenceSource(indices ...int) ShapeSource {
	if len(indices) == 0 {
		indices = []int{0}
	}
	next := 0
	return func(int) int {
		idx := indices[next%len(indices)]
		next++
		return idx
	}
}
