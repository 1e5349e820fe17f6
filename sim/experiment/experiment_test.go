package experiment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/queueing-sim/sim"
)

func smallConfig() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.NumDelaysRequired = 500
	return cfg
}

func statsOf(res *Result) []sim.FinalStatistics {
	out := make([]sim.FinalStatistics, len(res.Replications))
	for i, r := range res.Replications {
		out[i] = *r.Stats
	}
	return out
}

func TestRun_ResultsIndependentOfParallelism(t *testing.T) {
	// GIVEN the same config run serially and with 4 workers
	cfg := smallConfig()
	serial, err := Run(context.Background(), cfg, Options{Replications: 6, Parallelism: 1})
	require.NoError(t, err)
	parallel, err := Run(context.Background(), cfg, Options{Replications: 6, Parallelism: 4})
	require.NoError(t, err)

	// THEN every replication is identical and in index order
	assert.Equal(t, statsOf(serial), statsOf(parallel))
	for i, r := range parallel.Replications {
		assert.Equal(t, i, r.Index)
		assert.NotEmpty(t, r.RunID)
	}
	assert.Equal(t, serial.AverageDelay, parallel.AverageDelay)
}

func TestRun_ReplicationMatchesDirectRun(t *testing.T) {
	// GIVEN an experiment of 3 replications
	cfg := smallConfig()
	res, err := Run(context.Background(), cfg, Options{Replications: 3})
	require.NoError(t, err)

	// WHEN replication 2 is rerun directly with its derived seed
	seeds := Seeds(cfg.Seed, 3)
	direct := cfg
	direct.Seed = seeds[2]
	s, err := sim.NewSimulator(direct)
	require.NoError(t, err)
	want, err := s.Run()
	require.NoError(t, err)

	// THEN the results agree
	assert.Equal(t, seeds[2], res.Replications[2].Seed)
	assert.Equal(t, *want, *res.Replications[2].Stats)
}

func TestRun_ReplicationsDiffer(t *testing.T) {
	res, err := Run(context.Background(), smallConfig(), Options{Replications: 2})
	require.NoError(t, err)
	assert.NotEqual(t, res.Replications[0].Stats.EndTime, res.Replications[1].Stats.EndTime)
}

func TestRun_SummaryCoversAllReplications(t *testing.T) {
	res, err := Run(context.Background(), smallConfig(), Options{Replications: 5})
	require.NoError(t, err)

	assert.Equal(t, 5, res.AverageDelay.Count)
	assert.Equal(t, 5, res.Utilization.Count)
	assert.GreaterOrEqual(t, res.Utilization.Min, 0.0)
	assert.LessOrEqual(t, res.Utilization.Max, 1.0)
	assert.Greater(t, res.EndTime.HalfWidth, 0.0)
}

func TestRun_InvalidOptions(t *testing.T) {
	_, err := Run(context.Background(), smallConfig(), Options{Replications: 0})
	assert.Error(t, err)

	cfg := smallConfig()
	cfg.QueueCapacity = 0
	_, err = Run(context.Background(), cfg, Options{Replications: 2})
	var cfgErr *sim.InvalidConfigError
	assert.True(t, errors.As(err, &cfgErr), "expected InvalidConfigError, got %v", err)
}

func TestRun_OverflowPropagates(t *testing.T) {
	// GIVEN a config that always overflows
	cfg := smallConfig()
	cfg.MeanInterarrival = 0.1
	cfg.MeanService = 100
	cfg.QueueCapacity = 1

	// WHEN run as an experiment
	res, err := Run(context.Background(), cfg, Options{Replications: 4, Parallelism: 2})

	// THEN the overflow surfaces and no result is returned
	assert.Nil(t, res)
	var overflow *sim.QueueOverflowError
	assert.True(t, errors.As(err, &overflow), "expected QueueOverflowError, got %v", err)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, smallConfig(), Options{Replications: 10})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSeeds_Deterministic(t *testing.T) {
	assert.Equal(t, Seeds(42, 5), Seeds(42, 5))
	assert.NotEqual(t, Seeds(42, 5), Seeds(43, 5))
}
