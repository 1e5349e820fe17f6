// Package sim provides the discrete-event simulation engine for a
// single-server queue with one bounded FIFO waiting line.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - event.go: the two event kinds and the EventList (one pending time per kind)
//   - simulator.go: the next-event loop and the Arrival/Departure handlers
//   - metrics.go: time-weighted accumulators and FinalStatistics
//
// # Time advance
//
// Each Step selects the earliest scheduled event (Arrival wins ties), moves
// the clock to it, integrates queue length and server-busy time over the
// interval that just ended using the state that held during it, and only
// then runs the handler. A run stops when its StopCondition holds; by
// default that is NumDelaysRequired customers having begun service.
//
// # Randomness
//
// Every run owns exactly one seeded uniform stream (see rng.go) that is
// threaded through every Exponential draw, so equal seeds and configs give
// bit-identical FinalStatistics.
//
// # Sub-packages
//   - sim/trace/: optional per-event and per-customer recording
//   - sim/analysis/: closed-form M/M/1 results for comparison
//   - sim/experiment/: independent replications run concurrently
package sim
