// Package sim provides the core discrete-time simulation engine for the
// OS concurrency simulator.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - thread.go: Thread lifecycle (new → ready → running → blocked → terminated)
//     and the instruction program model
//   - scheduler.go: Scheduling policies (FCFS, priority, round-robin) and the
//     preemption predicate
//   - engine.go: The tick loop, instruction side effects, and queue management
//
// # Architecture
//
// The engine is single-threaded and cooperative: Tick calls execute strictly
// sequentially, and core multiplexing is a bookkeeping abstraction processed
// in ascending core-id order, not concurrent work. Blocking is represented
// purely as a state transition observed between ticks. Determinism holds
// bit-for-bit: semaphore and monitor queues are strict FIFO, and cores are
// serviced in a fixed order for both execution and dispatch.
//
// Sub-packages:
//   - sim/trace: append-only event log records (pure data, no sim dependency)
//   - sim/scenario: scenario presets and YAML scenario files that build
//     threads, semaphores, and monitors onto an Engine
//
// # Key Interfaces
//
// Scheduler is the extension point: Select removes the next thread from the
// ReadyQueue and ShouldPreempt decides time-slicing. Policies are a closed
// set constructed through NewScheduler(name, quantum).
package sim
