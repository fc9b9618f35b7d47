// Defines the Thread struct that models a simulated user thread.
// Tracks the instruction program, execution cursor, scheduling state,
// and per-thread timing accounting (wait, turnaround, quantum).

package sim

import (
	"fmt"
)

// ThreadState represents the lifecycle state of a simulated thread.
// Legal transitions: new → ready → running → {ready|blocked}* → terminated.
// There is no transition out of terminated.
type ThreadState string

const (
	StateNew        ThreadState = "new"
	StateReady      ThreadState = "ready"
	StateRunning    ThreadState = "running"
	StateBlocked    ThreadState = "blocked"
	StateTerminated ThreadState = "terminated"
)

// InstructionType identifies the effect of one program step.
type InstructionType string

const (
	InstrCompute       InstructionType = "compute"
	InstrWait          InstructionType = "wait"
	InstrSignal        InstructionType = "signal"
	InstrEnterMonitor  InstructionType = "enter-monitor"
	InstrExitMonitor   InstructionType = "exit-monitor"
	InstrMonitorWait   InstructionType = "monitor-wait"
	InstrMonitorSignal InstructionType = "monitor-signal"
)

// validInstructionTypes maps accepted instruction type strings.
var validInstructionTypes = map[InstructionType]bool{
	InstrCompute:       true,
	InstrWait:          true,
	InstrSignal:        true,
	InstrEnterMonitor:  true,
	InstrExitMonitor:   true,
	InstrMonitorWait:   true,
	InstrMonitorSignal: true,
}

// IsValidInstructionType returns true if the given string is a recognized
// instruction type.
func IsValidInstructionType(s string) bool {
	return validInstructionTypes[InstructionType(s)]
}

// Instruction is a single step of a thread's program. Resource names the
// semaphore or monitor the instruction operates on; it is empty for compute.
type Instruction struct {
	Type     InstructionType
	Resource string
}

func (in Instruction) String() string {
	if in.Resource == "" {
		return string(in.Type)
	}
	return fmt.Sprintf("%s(%s)", in.Type, in.Resource)
}

// Thread models a single user thread's lifecycle in the simulation.
// Each thread has:
// - an immutable ordered instruction program
// - an execution cursor (PC)
// - scheduling state and per-state timer
// - wait/turnaround accounting maintained by the engine
type Thread struct {
	ID       int    // Unique identifier, assigned by the engine's allocator
	Name     string // Human-readable name from the scenario
	Priority int    // Scheduling priority, higher = more favored
	State    ThreadState

	Instructions []Instruction // Immutable program; never mutated after admission
	PC           int           // Index of the next instruction to execute

	BurstTime     int // Total instruction count, fixed at admission
	RemainingTime int // Instructions left; BurstTime - PC at all times

	ArrivalTime    int64 // Clock tick at admission
	ReadyAt        int64 // Clock tick at which the new → ready transition fires
	WaitTime       int64 // Ticks spent ready or blocked
	TurnaroundTime int64 // CompletionTime - ArrivalTime, set at termination
	CompletionTime int64 // Clock tick at termination

	QuantumTicks int   // Instructions executed since last dispatch or preemption
	StateTicks   int64 // Ticks spent in the current state

	KernelID int // Kernel execution context backing this thread
}

// NewThread constructs a thread in the new state at the given arrival tick.
// The instruction slice is copied so callers cannot alias the program.
func NewThread(id int, name string, priority int, instructions []Instruction, arrival int64) *Thread {
	program := make([]Instruction, len(instructions))
	copy(program, instructions)
	return &Thread{
		ID:            id,
		Name:          name,
		Priority:      priority,
		State:         StateNew,
		Instructions:  program,
		BurstTime:     len(program),
		RemainingTime: len(program),
		ArrivalTime:   arrival,
	}
}

// Execute returns the instruction at the cursor and advances it, decrementing
// RemainingTime and incrementing the quantum counter. If the cursor has
// already reached the end of the program, Execute reports completion with no
// side effect (ok == false).
func (t *Thread) Execute() (Instruction, bool) {
	if t.PC >= len(t.Instructions) {
		return Instruction{}, false
	}
	in := t.Instructions[t.PC]
	t.PC++
	t.RemainingTime--
	t.QuantumTicks++
	return in, true
}

// Completed reports whether the cursor has consumed the whole program.
func (t *Thread) Completed() bool {
	return t.PC >= t.BurstTime
}

// SetState transitions the thread and resets the per-state timer.
func (t *Thread) SetState(s ThreadState) {
	t.State = s
	t.StateTicks = 0
}

// Tick advances the per-state timer, and additionally accrues WaitTime while
// the thread is ready or blocked. Invoked exactly once per simulated tick.
func (t *Thread) Tick() {
	t.StateTicks++
	if t.State == StateReady || t.State == StateBlocked {
		t.WaitTime++
	}
}

func (t *Thread) String() string {
	return fmt.Sprintf("Thread: (ID: %d, Name: %s, State: %s, PC: %d/%d)",
		t.ID, t.Name, t.State, t.PC, t.BurstTime)
}
