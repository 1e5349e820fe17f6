package sim

import (
	"math"
	"math/rand"
	"testing"
)

// === SimulationKey Tests ===

func TestSimulationKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewSimulationKey(tt.seed)
			if int64(key) != tt.seed {
				t.Errorf("NewSimulationKey(%d) = %d, want %d", tt.seed, key, tt.seed)
			}
		})
	}
}

// === PartitionedRNG Tests ===

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	// GIVEN two PartitionedRNGs built from the same key
	rng1 := NewPartitionedRNG(NewSimulationKey(42))
	rng2 := NewPartitionedRNG(NewSimulationKey(42))

	// WHEN three values are drawn from the same replication subsystem
	for i := 0; i < 3; i++ {
		v1 := rng1.ForSubsystem(SubsystemReplication(3)).Float64()
		v2 := rng2.ForSubsystem(SubsystemReplication(3)).Float64()

		// THEN the sequences match
		if v1 != v2 {
			t.Errorf("Value %d: got %v and %v, want identical", i, v1, v2)
		}
	}
}

func TestPartitionedRNG_VariatesUseMasterSeed(t *testing.T) {
	// GIVEN the variates subsystem for seed 42
	seed := int64(42)
	rng := NewPartitionedRNG(NewSimulationKey(seed)).ForSubsystem(SubsystemVariates)

	// WHEN compared against a directly seeded source
	direct := rand.New(rand.NewSource(seed))

	// THEN they produce identical sequences
	for i := 0; i < 10; i++ {
		if got, want := rng.Float64(), direct.Float64(); got != want {
			t.Errorf("Value %d: variates RNG = %v, direct RNG = %v", i, got, want)
		}
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	// GIVEN two RNGs from the same key
	rngA := NewPartitionedRNG(NewSimulationKey(7))
	rngB := NewPartitionedRNG(NewSimulationKey(7))

	// WHEN A draws heavily from the variates stream first
	for i := 0; i < 10; i++ {
		rngA.ForSubsystem(SubsystemVariates).Float64()
	}

	// THEN A's replication stream still starts where B's does
	a := rngA.ForSubsystem(SubsystemReplication(0)).Float64()
	b := rngB.ForSubsystem(SubsystemReplication(0)).Float64()
	if a != b {
		t.Errorf("replication stream perturbed by variates draws: %v != %v", a, b)
	}
}

func TestPartitionedRNG_CachesInstance(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))

	rng1 := rng.ForSubsystem(SubsystemVariates)
	rng2 := rng.ForSubsystem(SubsystemVariates)

	if rng1 != rng2 {
		t.Error("ForSubsystem returned different instances for the same name")
	}
}

func TestPartitionedRNG_DeriveSeed_DistinctPerReplication(t *testing.T) {
	// GIVEN a key
	rng := NewPartitionedRNG(NewSimulationKey(42))

	// WHEN seeds are derived for 100 replications
	seen := make(map[int64]int)
	for i := 0; i < 100; i++ {
		s := rng.DeriveSeed(SubsystemReplication(i))
		if prev, dup := seen[s]; dup {
			t.Fatalf("replications %d and %d share seed %d", prev, i, s)
		}
		seen[s] = i
	}

	// THEN the variates subsystem keeps the master seed
	if got := rng.DeriveSeed(SubsystemVariates); got != 42 {
		t.Errorf("DeriveSeed(variates) = %d, want 42", got)
	}
}

func TestPartitionedRNG_Key(t *testing.T) {
	key := NewSimulationKey(99)
	if got := NewPartitionedRNG(key).Key(); got != key {
		t.Errorf("Key() = %d, want %d", got, key)
	}
}
