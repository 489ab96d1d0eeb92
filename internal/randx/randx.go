// Package randx holds the stochastic primitives shared by the generators:
// weighted categorical sampling, uniform picks, and log-normal draws.
package randx

import (
	"math"
	"math/rand"
)

// WeightedChoice draws index i with probability weight(i)/sum(weights) by
// cumulative subtraction over a single uniform draw. Floating-point rounding
// can leave an uncaught remainder, in which case the last item wins; the
// function never indexes out of range.
func WeightedChoice(rng *rand.Rand, n int, weight func(int) float64) int {
	total := 0.0
	for i := 0; i < n; i++ {
		total += weight(i)
	}
	r := rng.Float64() * total
	for i := 0; i < n; i++ {
		r -= weight(i)
		if r < 0 {
			return i
		}
	}
	return n - 1
}

// WeightedIndex is WeightedChoice over a weight slice.
func WeightedIndex(rng *rand.Rand, weights []float64) int {
	return WeightedChoice(rng, len(weights), func(i int) float64 { return weights[i] })
}

// Pick returns a uniformly chosen element of items.
func Pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}

// UniformRange returns a uniform draw in [lo, hi).
func UniformRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// LogNormal returns exp(ln(mean) + stddev*Z) where Z is a standard normal
// variate from the Box-Muller transform. The mean anchors the median of the
// output distribution, not its arithmetic mean. The result is strictly
// positive.
func LogNormal(rng *rand.Rand, mean, stddev float64) float64 {
	u1 := rng.Float64()
	u2 := rng.Float64()
	// Box-Muller; guard u1 == 0 so the log stays finite.
	for u1 == 0 {
		u1 = rng.Float64()
	}
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return math.Exp(math.Log(mean) + stddev*z)
}
