package scenario

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/concurrency-sim/concurrency-sim/sim"
)

// Spec is a declarative scenario: engine configuration plus the threads and
// synchronization primitives to build onto it. Loaded from YAML via Load or
// constructed by the preset builders in scenarios.go.
type Spec struct {
	Name           string          `yaml:"name"`
	Cores          int             `yaml:"cores"`
	Algorithm      string          `yaml:"algorithm"`
	Quantum        int             `yaml:"quantum"`
	ThreadingModel string          `yaml:"threading_model"`
	Semaphores     []SemaphoreSpec `yaml:"semaphores,omitempty"`
	Monitors       []MonitorSpec   `yaml:"monitors,omitempty"`
	Threads        []ThreadSpec    `yaml:"threads"`
}

// SemaphoreSpec declares one named counting semaphore.
type SemaphoreSpec struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
}

// MonitorSpec declares one named monitor.
type MonitorSpec struct {
	Name string `yaml:"name"`
}

// ThreadSpec declares one thread with its instruction program.
// Instructions use the textual forms accepted by ParseInstruction.
type ThreadSpec struct {
	Name         string   `yaml:"name"`
	Priority     int      `yaml:"priority"`
	Instructions []string `yaml:"instructions"`
}

// Load reads and parses a YAML scenario file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &spec, nil
}

// Config returns the engine configuration for this scenario, filling
// unspecified fields from sim.DefaultConfig.
func (s *Spec) Config() sim.Config {
	cfg := sim.DefaultConfig()
	if s.Cores > 0 {
		cfg.CoreCount = s.Cores
	}
	if s.Algorithm != "" {
		cfg.Algorithm = s.Algorithm
	}
	if s.Quantum > 0 {
		cfg.Quantum = s.Quantum
	}
	if s.ThreadingModel != "" {
		cfg.ThreadingModel = s.ThreadingModel
	}
	return cfg
}

// Apply registers the scenario's semaphores, monitors, and threads onto the
// engine, in declaration order.
func (s *Spec) Apply(e *sim.Engine) error {
	for _, sem := range s.Semaphores {
		if _, err := e.AddSemaphore(sem.Name, sem.Value); err != nil {
			return err
		}
	}
	for _, mon := range s.Monitors {
		if _, err := e.AddMonitor(mon.Name); err != nil {
			return err
		}
	}
	for _, th := range s.Threads {
		program, err := ParseProgram(th.Instructions)
		if err != nil {
			return fmt.Errorf("thread %s: %w", th.Name, err)
		}
		e.AddThread(th.Name, th.Priority, program)
	}
	return nil
}

// instructionMnemonics maps textual opcodes to instruction types. Both the
// short mnemonic and the canonical type name are accepted.
var instructionMnemonics = map[string]sim.InstructionType{
	"compute":        sim.InstrCompute,
	"wait":           sim.InstrWait,
	"signal":         sim.InstrSignal,
	"enter":          sim.InstrEnterMonitor,
	"enter-monitor":  sim.InstrEnterMonitor,
	"exit":           sim.InstrExitMonitor,
	"exit-monitor":   sim.InstrExitMonitor,
	"mwait":          sim.InstrMonitorWait,
	"monitor-wait":   sim.InstrMonitorWait,
	"msignal":        sim.InstrMonitorSignal,
	"monitor-signal": sim.InstrMonitorSignal,
}

// ParseInstruction parses one textual instruction. Compute has no operand;
// every other opcode takes a resource name after a colon, e.g. "wait:buffer"
// or "enter-monitor:shared".
func ParseInstruction(text string) (sim.Instruction, error) {
	op, resource, hasResource := strings.Cut(strings.TrimSpace(text), ":")
	typ, ok := instructionMnemonics[op]
	if !ok {
		return sim.Instruction{}, fmt.Errorf("unknown instruction %q", text)
	}
	if typ == sim.InstrCompute {
		if hasResource {
			return sim.Instruction{}, fmt.Errorf("compute takes no resource, got %q", text)
		}
		return sim.Instruction{Type: sim.InstrCompute}, nil
	}
	if !hasResource || resource == "" {
		return sim.Instruction{}, fmt.Errorf("instruction %q requires a resource name", text)
	}
	return sim.Instruction{Type: typ, Resource: resource}, nil
}

// ParseProgram parses an ordered instruction list.
func ParseProgram(texts []string) ([]sim.Instruction, error) {
	program := make([]sim.Instruction, 0, len(texts))
	for i, text := range texts {
		in, err := ParseInstruction(text)
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		program = append(program, in)
	}
	return program, nil
}
