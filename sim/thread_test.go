package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func computeProgram(n int) []Instruction {
	out := make([]Instruction, n)
	for i := range out {
		out[i] = Instruction{Type: InstrCompute}
	}
	return out
}

func TestThreadState_Constants_HaveExpectedStringValues(t *testing.T) {
	assert.Equal(t, ThreadState("new"), StateNew)
	assert.Equal(t, ThreadState("ready"), StateReady)
	assert.Equal(t, ThreadState("running"), StateRunning)
	assert.Equal(t, ThreadState("blocked"), StateBlocked)
	assert.Equal(t, ThreadState("terminated"), StateTerminated)
}

func TestNewThread_StartsNewWithFullBurst(t *testing.T) {
	th := NewThread(1, "worker", 2, computeProgram(4), 10)

	assert.Equal(t, StateNew, th.State)
	assert.Equal(t, 4, th.BurstTime)
	assert.Equal(t, 4, th.RemainingTime)
	assert.Equal(t, 0, th.PC)
	assert.Equal(t, int64(10), th.ArrivalTime)
}

func TestNewThread_CopiesProgram(t *testing.T) {
	program := computeProgram(2)
	th := NewThread(1, "worker", 0, program, 0)

	program[0] = Instruction{Type: InstrWait, Resource: "mutated"}
	assert.Equal(t, InstrCompute, th.Instructions[0].Type)
}

func TestThread_Execute_MaintainsBurstInvariant(t *testing.T) {
	// remainingTime + cursor == burstTime after every step
	th := NewThread(1, "worker", 0, computeProgram(3), 0)
	for i := 0; i < 3; i++ {
		_, ok := th.Execute()
		assert.True(t, ok)
		assert.Equal(t, th.BurstTime, th.RemainingTime+th.PC)
	}
}

func TestThread_Execute_PastEnd_ReportsCompletionWithoutSideEffect(t *testing.T) {
	th := NewThread(1, "worker", 0, computeProgram(1), 0)
	th.Execute()

	_, ok := th.Execute()
	assert.False(t, ok)
	assert.Equal(t, 1, th.PC)
	assert.Equal(t, 0, th.RemainingTime)
	assert.True(t, th.Completed())
}

func TestThread_Execute_IncrementsQuantum(t *testing.T) {
	th := NewThread(1, "worker", 0, computeProgram(2), 0)
	th.Execute()
	th.Execute()
	assert.Equal(t, 2, th.QuantumTicks)
}

func TestThread_SetState_ResetsStateTimer(t *testing.T) {
	th := NewThread(1, "worker", 0, computeProgram(1), 0)
	th.SetState(StateReady)
	th.Tick()
	th.Tick()
	assert.Equal(t, int64(2), th.StateTicks)

	th.SetState(StateRunning)
	assert.Equal(t, int64(0), th.StateTicks)
}

func TestThread_Tick_AccruesWaitOnlyWhileReadyOrBlocked(t *testing.T) {
	th := NewThread(1, "worker", 0, computeProgram(1), 0)

	th.Tick() // new
	assert.Equal(t, int64(0), th.WaitTime)

	th.SetState(StateReady)
	th.Tick()
	assert.Equal(t, int64(1), th.WaitTime)

	th.SetState(StateRunning)
	th.Tick()
	assert.Equal(t, int64(1), th.WaitTime)

	th.SetState(StateBlocked)
	th.Tick()
	assert.Equal(t, int64(2), th.WaitTime)

	th.SetState(StateTerminated)
	th.Tick()
	assert.Equal(t, int64(2), th.WaitTime)
}

func TestInstruction_String_IncludesResource(t *testing.T) {
	assert.Equal(t, "compute", Instruction{Type: InstrCompute}.String())
	assert.Equal(t, "wait(mutex)", Instruction{Type: InstrWait, Resource: "mutex"}.String())
}

func TestIsValidInstructionType(t *testing.T) {
	assert.True(t, IsValidInstructionType("compute"))
	assert.True(t, IsValidInstructionType("monitor-signal"))
	assert.False(t, IsValidInstructionType("halt"))
}
