package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalEvents     int
	EventsByKind    map[string]int // event kind → count
	ServicesStarted int
	ZeroDelayCount  int // customers served on arrival
	MeanDelay       float64
	MaxDelay        float64
	MaxQueueLen     int
	BusyTransitions int // idle → busy changes
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		EventsByKind: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalEvents = len(st.Events)
	wasBusy := false
	for _, e := range st.Events {
		summary.EventsByKind[e.Kind]++
		if e.QueueLen > summary.MaxQueueLen {
			summary.MaxQueueLen = e.QueueLen
		}
		if e.ServerBusy && !wasBusy {
			summary.BusyTransitions++
		}
		wasBusy = e.ServerBusy
	}

	if len(st.Services) > 0 {
		totalDelay := 0.0
		for _, s := range st.Services {
			totalDelay += s.Delay
			if s.Delay == 0 {
				summary.ZeroDelayCount++
			}
			if s.Delay > summary.MaxDelay {
				summary.MaxDelay = s.Delay
			}
		}
		summary.MeanDelay = totalDelay / float64(len(st.Services))
	}
	summary.ServicesStarted = len(st.Services)

	return summary
}
