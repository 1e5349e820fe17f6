// Package experiment runs independent replications of a single-server
// simulation concurrently and summarizes them.
//
// Each replication owns its own Simulator and random stream, seeded from
// the base seed through sim.PartitionedRNG, so results depend only on the
// config and replication index, never on scheduling.
package experiment

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/queueing-sim/sim"
)

// Options controls how replications are executed.
type Options struct {
	Replications int // number of independent runs (must be > 0)
	Parallelism  int // max concurrent runs; <= 0 means GOMAXPROCS
}

// Replication is the outcome of one independent run.
type Replication struct {
	Index int                  `json:"index"`
	Seed  int64                `json:"seed"`
	RunID string               `json:"run_id"`
	Stats *sim.FinalStatistics `json:"stats"`
}

// Result holds every replication, in index order, plus per-metric summaries.
type Result struct {
	Replications       []Replication `json:"replications"`
	AverageDelay       Summary       `json:"average_delay"`
	AverageQueueLength Summary       `json:"average_queue_length"`
	Utilization        Summary       `json:"utilization"`
	EndTime            Summary       `json:"end_time"`
}

// Seeds returns the per-replication seeds derived from base.
func Seeds(base int64, n int) []int64 {
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(base))
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = rng.DeriveSeed(sim.SubsystemReplication(i))
	}
	return seeds
}

// Run executes opts.Replications independent runs of cfg. The first failing
// replication cancels the ones not yet started and its error is returned.
func Run(ctx context.Context, cfg sim.Config, opts Options) (*Result, error) {
	if opts.Replications <= 0 {
		return nil, fmt.Errorf("replications must be positive, got %d", opts.Replications)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	workers := opts.Parallelism
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, opts.Replications)

	seeds := Seeds(cfg.Seed, opts.Replications)
	reps := make([]Replication, opts.Replications)
	errs := make([]error, opts.Replications)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rep, err := runOne(cfg, i, seeds[i])
				if err != nil {
					errs[i] = err
					cancel()
					continue
				}
				reps[i] = rep
			}
		}()
	}

feed:
	for i := 0; i < opts.Replications; i++ {
		select {
		case jobs <- i:
		case <-runCtx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("replication %d (seed %d): %w", i, seeds[i], err)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logrus.Debugf("Completed %d replications with %d workers", opts.Replications, workers)
	return summarize(reps), nil
}

func runOne(cfg sim.Config, index int, seed int64) (Replication, error) {
	cfg.Seed = seed
	s, err := sim.NewSimulator(cfg)
	if err != nil {
		return Replication{}, err
	}
	stats, err := s.Run()
	if err != nil {
		return Replication{}, err
	}
	return Replication{Index: index, Seed: seed, RunID: s.ID(), Stats: stats}, nil
}

func summarize(reps []Replication) *Result {
	n := len(reps)
	delays := make([]float64, n)
	queues := make([]float64, n)
	utils := make([]float64, n)
	ends := make([]float64, n)
	for i, r := range reps {
		delays[i] = r.Stats.AverageDelay
		queues[i] = r.Stats.AverageQueueLength
		utils[i] = r.Stats.Utilization
		ends[i] = r.Stats.EndTime
	}
	return &Result{
		Replications:       reps,
		AverageDelay:       NewSummary(delays),
		AverageQueueLength: NewSummary(queues),
		Utilization:        NewSummary(utils),
		EndTime:            NewSummary(ends),
	}
}
