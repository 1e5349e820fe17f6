// Package trace provides per-event recording for single-server runs.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// EventRecord captures the system state right after one event was handled.
type EventRecord struct {
	Seq                int     // 1-based processing order
	Kind               string  // "arrival" or "departure"
	Time               float64 // clock at which the event was handled
	QueueLen           int
	ServerBusy         bool
	DepartureScheduled bool
}

// ServiceRecord captures one customer beginning service.
type ServiceRecord struct {
	ArrivalTime  float64
	ServiceStart float64
	Delay        float64
}
