package sim

// Progress is the view of a run that stopping predicates inspect.
type Progress struct {
	Clock            float64
	CustomersDelayed int
	EventsProcessed  int
}

// StopCondition decides, before each event is consumed, whether the run is
// finished. Events still scheduled when it returns true are discarded.
type StopCondition func(p Progress) bool

// UntilCustomers stops once n customers have begun service.
func UntilCustomers(n int) StopCondition {
	return func(p Progress) bool { return p.CustomersDelayed >= n }
}

// UntilTime stops once the clock has reached t.
func UntilTime(t float64) StopCondition {
	return func(p Progress) bool { return p.Clock >= t }
}

// UntilEvents stops once n events have been processed.
func UntilEvents(n int) StopCondition {
	return func(p Progress) bool { return p.EventsProcessed >= n }
}

// AnyOf stops as soon as any of conds does.
func AnyOf(conds ...StopCondition) StopCondition {
	return func(p Progress) bool {
		for _, c := range conds {
			if c(p) {
				return true
			}
		}
		return false
	}
}
