// Package analysis computes closed-form steady-state results for the
// M/M/1 queue with an unbounded waiting line.
package analysis

import (
	"fmt"
	"math"
)

// MM1 holds the steady-state measures of an M/M/1 queue.
// For an unstable system (Rho >= 1) the delay and queue-length measures are +Inf.
type MM1 struct {
	Rho                float64 `json:"rho"`
	Stable             bool    `json:"stable"`
	AverageDelay       float64 `json:"average_delay"`        // Wq
	AverageQueueLength float64 `json:"average_queue_length"` // Lq
	AverageInSystem    float64 `json:"average_in_system"`    // L
	AverageResponse    float64 `json:"average_response"`     // W
	Utilization        float64 `json:"utilization"`
}

// NewMM1 computes the M/M/1 measures for the given mean interarrival and
// mean service times. Both means must be positive.
func NewMM1(meanInterarrival, meanService float64) (*MM1, error) {
	if !(meanInterarrival > 0) || !(meanService > 0) {
		return nil, fmt.Errorf("means must be positive, got interarrival=%g service=%g", meanInterarrival, meanService)
	}
	rho := meanService / meanInterarrival
	m := &MM1{
		Rho:         rho,
		Stable:      rho < 1,
		Utilization: math.Min(rho, 1),
	}
	if !m.Stable {
		inf := math.Inf(1)
		m.AverageDelay, m.AverageQueueLength, m.AverageInSystem, m.AverageResponse = inf, inf, inf, inf
		return m, nil
	}
	m.AverageDelay = rho * meanService / (1 - rho)
	m.AverageQueueLength = rho * rho / (1 - rho)
	m.AverageInSystem = rho / (1 - rho)
	m.AverageResponse = meanService / (1 - rho)
	return m, nil
}

// RelativeError returns |observed-expected|/|expected|, or |observed| when
// expected is zero.
func RelativeError(observed, expected float64) float64 {
	if expected == 0 {
		return math.Abs(observed)
	}
	return math.Abs(observed-expected) / math.Abs(expected)
}
