package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/inference-sim/queueing-sim/sim"
)

// RunConfig is the YAML shape accepted by --config: the engine parameters
// plus how many replications to run.
// All top-level keys must be listed to satisfy KnownFields(true) strict parsing.
type RunConfig struct {
	sim.Config   `yaml:",inline"`
	Replications int `yaml:"replications" json:"replications"`
	Parallelism  int `yaml:"parallelism" json:"parallelism"` // 0 = GOMAXPROCS
}

// defaultRunConfig returns the engine defaults with a single replication.
func defaultRunConfig() RunConfig {
	return RunConfig{Config: sim.DefaultConfig(), Replications: 1}
}

// loadRunConfig parses a YAML run config on top of the defaults, so keys
// left out of the file keep their default values.
// Uses strict field checking: typos must cause errors.
func loadRunConfig(path string) (RunConfig, error) {
	cfg := defaultRunConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading run config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing run config: %w", err)
	}
	return cfg, nil
}

// Validate checks the engine config and the replication settings.
func (rc RunConfig) Validate() error {
	if err := rc.Config.Validate(); err != nil {
		return err
	}
	if rc.Replications <= 0 {
		return fmt.Errorf("replications must be positive, got %d", rc.Replications)
	}
	if rc.Parallelism < 0 {
		return fmt.Errorf("parallelism must be non-negative, got %d", rc.Parallelism)
	}
	return nil
}
