package randx

import (
	"math/rand"
	"testing"
)

func TestWeightedIndexFrequency(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	weights := []float64{1, 3}

	const trials = 10000
	second := 0
	for i := 0; i < trials; i++ {
		if WeightedIndex(rng, weights) == 1 {
			second++
		}
	}

	freq := float64(second) / trials
	if freq < 0.70 || freq > 0.80 {
		t.Errorf("expected second item frequency near 0.75, got %.3f", freq)
	}
}

func TestWeightedChoiceNeverOutOfRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	// Degenerate weights exercise the rounding fallback.
	weights := []float64{0, 0, 0}
	for i := 0; i < 1000; i++ {
		idx := WeightedIndex(rng, weights)
		if idx < 0 || idx >= len(weights) {
			t.Fatalf("index out of range: %d", idx)
		}
	}
}

func TestWeightedChoiceSingleItem(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if idx := WeightedIndex(rng, []float64{2.5}); idx != 0 {
		t.Errorf("expected index 0, got %d", idx)
	}
}

func TestLogNormalStrictlyPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 10000; i++ {
		v := LogNormal(rng, 1200, 0.6)
		if v <= 0 {
			t.Fatalf("log-normal draw must be positive, got %f", v)
		}
	}
}

func TestLogNormalMedianAnchor(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	const trials = 20000
	below := 0
	for i := 0; i < trials; i++ {
		if LogNormal(rng, 1000, 0.6) < 1000 {
			below++
		}
	}
	// The anchor is the median, so about half the draws land below it.
	frac := float64(below) / trials
	if frac < 0.45 || frac > 0.55 {
		t.Errorf("expected ~0.5 of draws below the anchor, got %.3f", frac)
	}
}

func TestUniformRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		v := UniformRange(rng, 0.8, 1.2)
		if v < 0.8 || v >= 1.2 {
			t.Fatalf("draw %f outside [0.8, 1.2)", v)
		}
	}
}
