package sim

import (
	"fmt"
)

// Scheduling algorithm names accepted by NewScheduler and Config.Validate.
const (
	AlgorithmFCFS       = "fcfs"
	AlgorithmPriority   = "priority"
	AlgorithmRoundRobin = "round-robin"
)

// Scheduler selects the next thread to dispatch from the ready queue and
// decides when a running thread must be preempted. Implementations are
// stateless per tick; all scheduling state lives on the threads themselves.
type Scheduler interface {
	// Select removes and returns the next thread to run.
	// Returns nil if the queue is empty.
	Select(rq *ReadyQueue) *Thread
	// ShouldPreempt reports whether the running thread must yield its core.
	ShouldPreempt(t *Thread) bool
}

// FCFSScheduler dispatches in arrival/insertion order and never preempts.
type FCFSScheduler struct{}

func (f *FCFSScheduler) Select(rq *ReadyQueue) *Thread {
	return rq.Dequeue()
}

func (f *FCFSScheduler) ShouldPreempt(_ *Thread) bool {
	return false
}

// PriorityScheduler dispatches the maximum-priority ready thread; ties are
// broken by earliest queue position. No time-slicing: a dispatched thread
// runs until it blocks or completes.
type PriorityScheduler struct{}

func (p *PriorityScheduler) Select(rq *ReadyQueue) *Thread {
	if rq.Len() == 0 {
		return nil
	}
	best := 0
	for i, t := range rq.Items() {
		if t.Priority > rq.Items()[best].Priority {
			best = i
		}
	}
	return rq.RemoveAt(best)
}

func (p *PriorityScheduler) ShouldPreempt(_ *Thread) bool {
	return false
}

// RoundRobinScheduler dispatches in FIFO order like FCFS, but preempts a
// running thread once it has held its core for Quantum ticks.
type RoundRobinScheduler struct {
	Quantum int
}

func (r *RoundRobinScheduler) Select(rq *ReadyQueue) *Thread {
	return rq.Dequeue()
}

func (r *RoundRobinScheduler) ShouldPreempt(t *Thread) bool {
	return t.QuantumTicks >= r.Quantum
}

// validAlgorithms maps accepted scheduling algorithm names.
var validAlgorithms = map[string]bool{
	"":                  true, // empty defaults to round-robin
	AlgorithmFCFS:       true,
	AlgorithmPriority:   true,
	AlgorithmRoundRobin: true,
}

// IsValidAlgorithm returns true if the given name is a recognized
// scheduling algorithm.
func IsValidAlgorithm(name string) bool {
	return validAlgorithms[name]
}

// NewScheduler creates a Scheduler by algorithm name.
// Valid names: "fcfs", "priority", "round-robin" (default).
// Empty string defaults to RoundRobinScheduler (for CLI flag default
// compatibility). Panics on unrecognized names; Config.Validate rejects
// them before engine construction.
func NewScheduler(name string, quantum int) Scheduler {
	if !IsValidAlgorithm(name) {
		panic(fmt.Sprintf("unknown scheduling algorithm %q", name))
	}
	switch name {
	case AlgorithmFCFS:
		return &FCFSScheduler{}
	case AlgorithmPriority:
		return &PriorityScheduler{}
	case "", AlgorithmRoundRobin:
		return &RoundRobinScheduler{Quantum: quantum}
	default:
		panic(fmt.Sprintf("unhandled scheduling algorithm %q", name))
	}
}
