package sim

import "fmt"

// EventKind is the closed set of event types driving the single-server model.
// The declaration order is also the tie-break priority: when two kinds are
// scheduled at the same instant, the lower value is selected first.
type EventKind int

const (
	// Arrival is a customer entering the system.
	Arrival EventKind = iota
	// Departure is a service completion.
	Departure

	numEventKinds
)

// EventKinds lists every kind in priority order.
var EventKinds = [numEventKinds]EventKind{Arrival, Departure}

func (k EventKind) String() string {
	switch k {
	case Arrival:
		return "arrival"
	case Departure:
		return "departure"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// eventTime is the scheduled time of one event kind. The zero value means
// "not scheduled"; there is no numeric sentinel.
type eventTime struct {
	at        float64
	scheduled bool
}

// EventList holds at most one pending time per event kind.
// The zero value has every kind unscheduled.
type EventList struct {
	times [numEventKinds]eventTime
}

// Schedule sets the time for kind, overwriting any prior value.
func (el *EventList) Schedule(kind EventKind, at float64) {
	el.times[kind.index()] = eventTime{at: at, scheduled: true}
}

// Cancel marks kind as not scheduled.
func (el *EventList) Cancel(kind EventKind) {
	el.times[kind.index()] = eventTime{}
}

// Scheduled reports the pending time for kind and whether it is scheduled.
func (el *EventList) Scheduled(kind EventKind) (float64, bool) {
	t := el.times[kind.index()]
	return t.at, t.scheduled
}

// Next returns the kind with the earliest scheduled time. Ties go to the kind
// that comes first in EventKinds (Arrival before Departure). When nothing is
// scheduled it returns ok=false.
func (el *EventList) Next() (kind EventKind, at float64, ok bool) {
	for _, k := range EventKinds {
		t := el.times[k]
		if !t.scheduled {
			continue
		}
		if !ok || t.at < at {
			kind, at, ok = k, t.at, true
		}
	}
	return kind, at, ok
}

func (el *EventList) String() string {
	s := "["
	for i, k := range EventKinds {
		if i > 0 {
			s += " "
		}
		if t := el.times[k]; t.scheduled {
			s += fmt.Sprintf("%s=%g", k, t.at)
		} else {
			s += fmt.Sprintf("%s=-", k)
		}
	}
	return s + "]"
}

func (k EventKind) index() int {
	if k < 0 || k >= numEventKinds {
		panic(fmt.Sprintf("unknown event kind %d", int(k)))
	}
	return int(k)
}
