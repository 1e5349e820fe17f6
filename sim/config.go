package sim

import (
	"math"

	"github.com/inference-sim/queueing-sim/sim/trace"
)

// Config groups the parameters of a single-server run.
// Zero MaxTime and MaxEvents mean "no limit".
type Config struct {
	MeanInterarrival  float64 `yaml:"mean_interarrival" json:"mean_interarrival"`
	MeanService       float64 `yaml:"mean_service" json:"mean_service"`
	NumDelaysRequired int     `yaml:"num_delays_required" json:"num_delays_required"`
	QueueCapacity     int     `yaml:"queue_capacity" json:"queue_capacity"`
	Seed              int64   `yaml:"seed" json:"seed"`

	MaxTime   float64 `yaml:"max_time,omitempty" json:"max_time,omitempty"`     // optional clock bound
	MaxEvents int     `yaml:"max_events,omitempty" json:"max_events,omitempty"` // optional processed-event bound

	// TraceLevel selects per-event recording (see sim/trace); "" or "none" disables it.
	TraceLevel string `yaml:"trace_level,omitempty" json:"trace_level,omitempty"`
}

// DefaultConfig returns the classic textbook parameters: mean interarrival
// 1.0, mean service 0.5, 1000 customers and a waiting line of 100.
func DefaultConfig() Config {
	return Config{
		MeanInterarrival:  1.0,
		MeanService:       0.5,
		NumDelaysRequired: 1000,
		QueueCapacity:     DefaultQueueCapacity,
		Seed:              42,
	}
}

// Validate checks all parameter ranges. The first violation is returned as
// an *InvalidConfigError.
func (c Config) Validate() error {
	if !positiveFinite(c.MeanInterarrival) {
		return &InvalidConfigError{Field: "mean_interarrival", Value: c.MeanInterarrival, Reason: "must be a positive finite number"}
	}
	if !positiveFinite(c.MeanService) {
		return &InvalidConfigError{Field: "mean_service", Value: c.MeanService, Reason: "must be a positive finite number"}
	}
	if c.NumDelaysRequired <= 0 {
		return &InvalidConfigError{Field: "num_delays_required", Value: c.NumDelaysRequired, Reason: "must be positive"}
	}
	if c.QueueCapacity <= 0 {
		return &InvalidConfigError{Field: "queue_capacity", Value: c.QueueCapacity, Reason: "must be positive"}
	}
	if c.MaxTime < 0 || math.IsNaN(c.MaxTime) {
		return &InvalidConfigError{Field: "max_time", Value: c.MaxTime, Reason: "must be non-negative"}
	}
	if c.MaxEvents < 0 {
		return &InvalidConfigError{Field: "max_events", Value: c.MaxEvents, Reason: "must be non-negative"}
	}
	if !trace.IsValidTraceLevel(c.TraceLevel) {
		return &InvalidConfigError{Field: "trace_level", Value: c.TraceLevel, Reason: "unknown trace level"}
	}
	return nil
}

// StopCondition builds the stopping predicate implied by the config: the
// customer target, tightened by MaxTime and MaxEvents when they are set.
func (c Config) StopCondition() StopCondition {
	conds := []StopCondition{UntilCustomers(c.NumDelaysRequired)}
	if c.MaxTime > 0 {
		conds = append(conds, UntilTime(c.MaxTime))
	}
	if c.MaxEvents > 0 {
		conds = append(conds, UntilEvents(c.MaxEvents))
	}
	if len(conds) == 1 {
		return conds[0]
	}
	return AnyOf(conds...)
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
