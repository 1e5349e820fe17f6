// Tracks the time-weighted and per-customer statistics of a run.

package sim

import "fmt"

// Accumulators holds the statistical counters of a run. Areas integrate the
// queue-length and server-busy curves over simulated time; they are never
// averaged over event occurrences.
type Accumulators struct {
	TotalDelay       float64 // sum of delays of customers who have begun service
	CustomersDelayed int     // customers who have begun service
	QueueArea        float64 // integral of queue length over time
	BusyArea         float64 // integral of the server-busy indicator over time
	LastEventTime    float64 // time of the last Advance
	MaxQueueLength   int     // peak waiting-line length observed
}

// Advance closes out the interval [LastEventTime, now] using the state that
// held during it. It must be called before the event at now mutates
// queueLen or busy.
func (a *Accumulators) Advance(now float64, queueLen int, busy bool) {
	elapsed := now - a.LastEventTime
	a.LastEventTime = now

	a.QueueArea += float64(queueLen) * elapsed
	if busy {
		a.BusyArea += elapsed
	}
}

// RecordDelay counts one customer beginning service after waiting delay.
func (a *Accumulators) RecordDelay(delay float64) {
	a.TotalDelay += delay
	a.CustomersDelayed++
}

// observeQueueLength tracks the peak waiting-line length.
func (a *Accumulators) observeQueueLength(n int) {
	if n > a.MaxQueueLength {
		a.MaxQueueLength = n
	}
}

// FinalStatistics is the read-only result of a completed run.
type FinalStatistics struct {
	AverageDelay       float64 `json:"average_delay"`
	AverageQueueLength float64 `json:"average_queue_length"`
	Utilization        float64 `json:"utilization"`
	EndTime            float64 `json:"end_time"`

	CustomersDelayed int     `json:"customers_delayed"`
	TotalDelay       float64 `json:"total_delay"`
	QueueArea        float64 `json:"queue_area"`
	BusyArea         float64 `json:"busy_area"`
	MaxQueueLength   int     `json:"max_queue_length"`
	EventsProcessed  int     `json:"events_processed"`
}

// NewFinalStatistics derives the reported averages from the accumulators at
// endTime. Averages with a zero denominator are reported as 0.
func NewFinalStatistics(a Accumulators, endTime float64, events int) *FinalStatistics {
	fs := &FinalStatistics{
		EndTime:          endTime,
		CustomersDelayed: a.CustomersDelayed,
		TotalDelay:       a.TotalDelay,
		QueueArea:        a.QueueArea,
		BusyArea:         a.BusyArea,
		MaxQueueLength:   a.MaxQueueLength,
		EventsProcessed:  events,
	}
	if a.CustomersDelayed > 0 {
		fs.AverageDelay = a.TotalDelay / float64(a.CustomersDelayed)
	}
	if endTime > 0 {
		fs.AverageQueueLength = a.QueueArea / endTime
		fs.Utilization = a.BusyArea / endTime
	}
	return fs
}

func (fs *FinalStatistics) String() string {
	return fmt.Sprintf("delay=%.4f queue=%.4f util=%.4f end=%.4f",
		fs.AverageDelay, fs.AverageQueueLength, fs.Utilization, fs.EndTime)
}
