package scenario

import (
	"fmt"
	"sort"
)

// Built-in scenario presets for classical synchronization problems.
// Each returns a valid Spec ready for Apply onto a fresh engine.

// ProducerConsumer builds the bounded-buffer scenario: five buffer slots
// guarded by counting semaphores (empty=5, full=0) with a binary semaphore
// (buffer=1) protecting the buffer itself. Two cores, round-robin with a
// quantum of three ticks.
func ProducerConsumer(items int) *Spec {
	producer := make([]string, 0, items*5)
	consumer := make([]string, 0, items*5)
	for i := 0; i < items; i++ {
		producer = append(producer,
			"wait:empty", "wait:buffer", "compute", "signal:buffer", "signal:full")
		consumer = append(consumer,
			"wait:full", "wait:buffer", "compute", "signal:buffer", "signal:empty")
	}
	return &Spec{
		Name:      "producer-consumer",
		Cores:     2,
		Algorithm: "round-robin",
		Quantum:   3,
		Semaphores: []SemaphoreSpec{
			{Name: "empty", Value: 5},
			{Name: "full", Value: 0},
			{Name: "buffer", Value: 1},
		},
		Threads: []ThreadSpec{
			{Name: "producer", Priority: 1, Instructions: producer},
			{Name: "consumer", Priority: 1, Instructions: consumer},
		},
	}
}

// DiningPhilosophers builds the classic five-philosopher table with one
// single-unit semaphore per fork and priority scheduling on five cores.
// Every philosopher picks up the left fork before the right one, so the
// system can reach the classic circular-wait deadlock; the engine must
// reproduce that outcome rather than resolve it.
func DiningPhilosophers() *Spec {
	spec := &Spec{
		Name:      "dining-philosophers",
		Cores:     5,
		Algorithm: "priority",
		Quantum:   3,
	}
	for i := 0; i < 5; i++ {
		spec.Semaphores = append(spec.Semaphores,
			SemaphoreSpec{Name: fmt.Sprintf("fork%d", i), Value: 1})
	}
	for i := 0; i < 5; i++ {
		left := fmt.Sprintf("fork%d", i)
		right := fmt.Sprintf("fork%d", (i+1)%5)
		spec.Threads = append(spec.Threads, ThreadSpec{
			Name:     fmt.Sprintf("philosopher%d", i),
			Priority: 1,
			Instructions: []string{
				"compute", // think
				"wait:" + left,
				"wait:" + right,
				"compute", // eat
				"signal:" + right,
				"signal:" + left,
			},
		})
	}
	return spec
}

// MonitorHandoff builds a two-thread monitor scenario exercising the
// condition-queue priority on release: a waiter parks on the condition,
// a signaler wakes it, and the waiter re-acquires ownership ahead of the
// entry queue.
func MonitorHandoff() *Spec {
	return &Spec{
		Name:      "monitor-handoff",
		Cores:     2,
		Algorithm: "fcfs",
		Quantum:   3,
		Monitors:  []MonitorSpec{{Name: "shared"}},
		Threads: []ThreadSpec{
			{Name: "waiter", Priority: 1, Instructions: []string{
				"enter:shared", "mwait:shared", "compute", "exit:shared",
			}},
			{Name: "signaler", Priority: 1, Instructions: []string{
				"compute", "enter:shared", "msignal:shared", "compute", "exit:shared",
			}},
		},
	}
}

// ComputeBurst builds compute-only threads with mixed priorities, useful
// for comparing the scheduling algorithms head to head.
func ComputeBurst() *Spec {
	burst := func(n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = "compute"
		}
		return out
	}
	return &Spec{
		Name:      "compute-burst",
		Cores:     2,
		Algorithm: "round-robin",
		Quantum:   3,
		Threads: []ThreadSpec{
			{Name: "short", Priority: 1, Instructions: burst(4)},
			{Name: "medium", Priority: 2, Instructions: burst(8)},
			{Name: "long", Priority: 3, Instructions: burst(12)},
		},
	}
}

// presets maps scenario names to their builders.
var presets = map[string]func() *Spec{
	"producer-consumer":   func() *Spec { return ProducerConsumer(3) },
	"dining-philosophers": DiningPhilosophers,
	"monitor-handoff":     MonitorHandoff,
	"compute-burst":       ComputeBurst,
}

// ValidPresets returns the names of the built-in scenarios.
func ValidPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build returns the named built-in scenario.
func Build(name string) (*Spec, error) {
	builder, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q", name)
	}
	return builder(), nil
}
