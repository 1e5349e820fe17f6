// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/queueing-sim/sim/trace"
)

// ServerState is the status of the single server.
type ServerState int

const (
	Idle ServerState = iota
	Busy
)

func (s ServerState) String() string {
	if s == Busy {
		return "busy"
	}
	return "idle"
}

// RunState is the lifecycle of a Simulator: Running → Completed, or
// Running → Halted when a run fails. Both end states are terminal.
type RunState int

const (
	Uninitialized RunState = iota
	Running
	Completed
	Halted
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Halted:
		return "halted"
	default:
		return "uninitialized"
	}
}

// Simulator is the core object that holds simulation time, system state, and
// the event loop of one run. It owns its random stream; nothing is shared
// between Simulators, so independent runs may execute concurrently.
type Simulator struct {
	id     string
	config Config
	state  RunState

	clock  float64
	events EventList
	server ServerState
	// WaitQ holds the arrival times of customers queued behind the server
	waitQ *WaitQueue
	stats Accumulators
	// number of events handled so far
	eventCount int

	rng  UniformSource
	stop StopCondition

	trace *trace.SimulationTrace
	log   *logrus.Entry
}

// NewSimulator validates cfg and creates a fresh run: clock at 0, server
// idle, empty queue, zeroed accumulators, the first Arrival scheduled and
// Departure unscheduled. The random stream is seeded from cfg.Seed.
func NewSimulator(cfg Config) (*Simulator, error) {
	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed)).ForSubsystem(SubsystemVariates)
	return NewSimulatorWithSource(cfg, rng)
}

// NewSimulatorWithSource is NewSimulator with an explicit uniform stream.
// The Simulator takes ownership of src; it must not be shared with another run.
func NewSimulatorWithSource(cfg Config, src UniformSource) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, &InvalidConfigError{Field: "source", Value: nil, Reason: "uniform source must not be nil"}
	}

	id := xid.New().String()
	s := &Simulator{
		id:     id,
		config: cfg,
		state:  Running,
		server: Idle,
		waitQ:  NewWaitQueue(cfg.QueueCapacity),
		rng:    src,
		stop:   cfg.StopCondition(),
		log:    logrus.WithField("run", id),
	}
	if trace.Enabled(cfg.TraceLevel) {
		s.trace = trace.NewSimulationTrace(trace.TraceLevel(cfg.TraceLevel))
	}

	first, err := Exponential(cfg.MeanInterarrival, s.rng)
	if err != nil {
		return nil, err
	}
	s.events.Schedule(Arrival, s.clock+first)

	s.log.Debugf("Initialized: mean_interarrival=%g mean_service=%g customers=%d capacity=%d seed=%d",
		cfg.MeanInterarrival, cfg.MeanService, cfg.NumDelaysRequired, cfg.QueueCapacity, cfg.Seed)
	return s, nil
}

// SetStopCondition replaces the stopping predicate derived from the config.
// It has no effect once the run has finished.
func (s *Simulator) SetStopCondition(stop StopCondition) {
	if s.state != Running || stop == nil {
		return
	}
	s.stop = stop
}

// Run executes the next-event loop until the stop condition holds and
// returns the final statistics. On QueueOverflowError or EmptyEventListError
// the run halts and no statistics are produced.
func (s *Simulator) Run() (*FinalStatistics, error) {
	if s.state != Running {
		return nil, ErrRunFinished
	}
	for !s.stop(s.progress()) {
		if err := s.Step(); err != nil {
			return nil, err
		}
	}
	s.state = Completed
	s.log.Debugf("[t=%.6f] Simulation ended after %d events", s.clock, s.eventCount)
	return s.Statistics()
}

// Step processes exactly one event: select the next event, advance the
// clock, integrate the elapsed interval with the pre-event state, then
// dispatch to the handler. Step ignores the stop condition.
func (s *Simulator) Step() error {
	if s.state != Running {
		return ErrRunFinished
	}

	kind, at, ok := s.events.Next()
	if !ok {
		return s.halt(&EmptyEventListError{Time: s.clock})
	}
	if at < s.clock {
		panic(fmt.Sprintf("event %s at %g precedes clock %g", kind, at, s.clock))
	}

	s.clock = at
	s.stats.Advance(at, s.waitQ.Len(), s.server == Busy)
	s.eventCount++
	s.log.Tracef("[t=%.6f] Executing %s", at, kind)

	var err error
	switch kind {
	case Arrival:
		err = s.arrive()
	case Departure:
		err = s.depart()
	default:
		panic(fmt.Sprintf("no handler for event kind %s", kind))
	}
	if err != nil {
		return s.halt(err)
	}

	if s.trace != nil {
		_, departing := s.events.Scheduled(Departure)
		s.trace.RecordEvent(trace.EventRecord{
			Seq:                s.eventCount,
			Kind:               kind.String(),
			Time:               at,
			QueueLen:           s.waitQ.Len(),
			ServerBusy:         s.server == Busy,
			DepartureScheduled: departing,
		})
	}
	return nil
}

// arrive handles an Arrival: schedule the next one, then either queue the
// customer behind a busy server or start service immediately.
func (s *Simulator) arrive() error {
	interarrival, err := Exponential(s.config.MeanInterarrival, s.rng)
	if err != nil {
		return err
	}
	s.events.Schedule(Arrival, s.clock+interarrival)

	if s.server == Busy {
		if err := s.waitQ.Enqueue(s.clock); err != nil {
			return err
		}
		s.stats.observeQueueLength(s.waitQ.Len())
		return nil
	}

	// idle server: zero delay
	s.beginService(s.clock)
	s.server = Busy
	return s.scheduleDeparture()
}

// depart handles a Departure: idle the server if nobody waits, otherwise
// start serving the customer at the front of the queue.
func (s *Simulator) depart() error {
	arrivedAt, ok := s.waitQ.Dequeue()
	if !ok {
		s.server = Idle
		s.events.Cancel(Departure)
		return nil
	}
	s.beginService(arrivedAt)
	return s.scheduleDeparture()
}

func (s *Simulator) beginService(arrivedAt float64) {
	delay := s.clock - arrivedAt
	s.stats.RecordDelay(delay)
	if s.trace != nil {
		s.trace.RecordService(trace.ServiceRecord{
			ArrivalTime:  arrivedAt,
			ServiceStart: s.clock,
			Delay:        delay,
		})
	}
}

func (s *Simulator) scheduleDeparture() error {
	service, err := Exponential(s.config.MeanService, s.rng)
	if err != nil {
		return err
	}
	s.events.Schedule(Departure, s.clock+service)
	return nil
}

func (s *Simulator) halt(err error) error {
	s.state = Halted
	s.log.Debugf("[t=%.6f] Simulation halted: %v", s.clock, err)
	return err
}

func (s *Simulator) progress() Progress {
	return Progress{
		Clock:            s.clock,
		CustomersDelayed: s.stats.CustomersDelayed,
		EventsProcessed:  s.eventCount,
	}
}

// Statistics returns the final statistics of a completed run.
// Runs that are still going or that halted have none.
func (s *Simulator) Statistics() (*FinalStatistics, error) {
	if s.state != Completed {
		return nil, fmt.Errorf("statistics unavailable: run is %s", s.state)
	}
	return NewFinalStatistics(s.stats, s.clock, s.eventCount), nil
}

// ID returns the run identifier used in log output.
func (s *Simulator) ID() string { return s.id }

// State returns the lifecycle state.
func (s *Simulator) State() RunState { return s.state }

// Clock returns the current simulated time.
func (s *Simulator) Clock() float64 { return s.clock }

// Server returns the current server state.
func (s *Simulator) Server() ServerState { return s.server }

// QueueLen returns the number of waiting customers.
func (s *Simulator) QueueLen() int { return s.waitQ.Len() }

// Accumulators returns a copy of the statistical counters.
func (s *Simulator) Accumulators() Accumulators { return s.stats }

// NextEvent returns the pending time of kind, if scheduled.
func (s *Simulator) NextEvent(kind EventKind) (float64, bool) {
	return s.events.Scheduled(kind)
}

// Trace returns the recorded trace, or nil when tracing is disabled.
func (s *Simulator) Trace() *trace.SimulationTrace { return s.trace }

// Config returns the configuration the run was initialized with.
func (s *Simulator) Config() Config { return s.config }
