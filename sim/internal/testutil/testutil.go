// Package testutil provides shared test infrastructure for the simulator.
// It consolidates assertion helpers and deterministic random sources used
// across sim/ and its sub-package tests.
package testutil

import (
	"math"
	"testing"
)

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// SequenceSource replays a fixed list of uniform draws, cycling when
// exhausted. It lets tests predict every variate exactly.
type SequenceSource struct {
	Values []float64
	Draws  int // number of values handed out so far
}

// NewSequenceSource creates a source that yields values in order.
func NewSequenceSource(values ...float64) *SequenceSource {
	if len(values) == 0 {
		panic("NewSequenceSource: at least one value is required")
	}
	return &SequenceSource{Values: values}
}

// Float64 returns the next value in the sequence.
func (s *SequenceSource) Float64() float64 {
	v := s.Values[s.Draws%len(s.Values)]
	s.Draws++
	return v
}

// ExpOf returns the exponential variate the simulator derives from the
// uniform draw u with the given mean.
func ExpOf(mean, u float64) float64 {
	return -mean * math.Log(u)
}
