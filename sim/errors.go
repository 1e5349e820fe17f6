package sim

import (
	"errors"
	"fmt"
)

// ErrRunFinished is returned when Run is called on a simulator that has
// already completed or halted. A run is not restartable in place.
var ErrRunFinished = errors.New("simulation run already finished")

// InvalidConfigError reports a configuration value rejected by Validate or
// by the variate generator. It is never coerced into a valid value.
type InvalidConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s=%v: %s", e.Field, e.Value, e.Reason)
}

// QueueOverflowError is returned when an arrival finds the waiting queue
// already holding Capacity customers. The run halts without statistics.
type QueueOverflowError struct {
	Time     float64
	Capacity int
}

func (e *QueueOverflowError) Error() string {
	return fmt.Sprintf("waiting queue overflow at time %g: capacity %d exceeded", e.Time, e.Capacity)
}

// EmptyEventListError is returned when no event kind is scheduled. In a
// correctly driven run Arrival is always rescheduled, so this signals a
// logic defect.
type EmptyEventListError struct {
	Time float64
}

func (e *EmptyEventListError) Error() string {
	return fmt.Sprintf("event list empty at time %g", e.Time)
}
