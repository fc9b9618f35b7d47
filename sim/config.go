package sim

import (
	"fmt"
)

// Config groups engine construction parameters. Validate rejects malformed
// configurations before the engine is built, keeping the tick loop itself
// total for any configuration that passed the boundary.
type Config struct {
	CoreCount      int    // number of CPU cores (must be > 0)
	Algorithm      string // "fcfs", "priority", "round-robin" (default)
	Quantum        int    // round-robin time slice in ticks (must be > 0)
	ThreadingModel string // "one-to-one" (default), "many-to-one", "many-to-many"
}

// DefaultConfig returns the configuration used when a scenario does not
// specify its own: two cores, round-robin with a quantum of three ticks,
// one-to-one threading.
func DefaultConfig() Config {
	return Config{
		CoreCount:      2,
		Algorithm:      AlgorithmRoundRobin,
		Quantum:        3,
		ThreadingModel: string(ModelOneToOne),
	}
}

// Validate checks the configuration for structural errors.
func (c Config) Validate() error {
	if c.CoreCount <= 0 {
		return fmt.Errorf("core count must be positive, got %d", c.CoreCount)
	}
	if c.Quantum <= 0 {
		return fmt.Errorf("quantum must be positive, got %d", c.Quantum)
	}
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("unknown scheduling algorithm %q", c.Algorithm)
	}
	if !IsValidThreadingModel(c.ThreadingModel) {
		return fmt.Errorf("unknown threading model %q", c.ThreadingModel)
	}
	return nil
}
