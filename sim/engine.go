// Implements the simulation engine: the single-writer owner of all clock,
// thread, queue, and resource state, advanced one discrete step per Tick.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/concurrency-sim/concurrency-sim/sim/trace"
)

// admissionDelay is the number of ticks between thread admission and the
// new → ready transition. Fixed at one tick so admission is deterministic
// with respect to the simulated clock.
const admissionDelay = 1

// Engine is the core object that owns all simulation state and drives one
// discrete step per Tick call. All mutable state (queues, registries, core
// array) is single-writer: only the engine's own operations mutate it, and
// external callers observe snapshots.
type Engine struct {
	Clock int64

	cfg       Config
	scheduler Scheduler
	mapper    *KernelMapper
	cores     []*CPUCore

	threads    []*Thread       // insertion order; threads are never removed
	ready      *ReadyQueue     // scheduler-ordered runnable pool
	blocked    map[int]*Thread // unordered blocked set keyed by thread id
	terminated []*Thread       // completion order

	semaphores map[string]*Semaphore
	monitors   map[string]*Monitor

	nextThreadID       int
	unknownResourceOps int // diagnostic counter for silent no-op instructions

	log *trace.Log
}

// NewEngine validates the configuration and constructs a fresh engine.
func NewEngine(cfg Config) (*Engine, error) {
	e := &Engine{}
	if err := e.Initialize(cfg); err != nil {
		return nil, err
	}
	return e, nil
}

// Initialize resets the engine and applies the given configuration: core
// array, scheduling algorithm, quantum, and threading model.
func (e *Engine) Initialize(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("engine config: %w", err)
	}
	e.cfg = cfg
	e.scheduler = NewScheduler(cfg.Algorithm, cfg.Quantum)
	e.mapper = NewKernelMapper(ThreadingModel(cfg.ThreadingModel), cfg.CoreCount)
	e.Reset()
	return nil
}

// Reset clears all threads, queues, registries, cores, counters, and the
// event log, and reinitializes the id allocator to start at 1.
func (e *Engine) Reset() {
	e.Clock = 0
	e.threads = nil
	e.ready = &ReadyQueue{}
	e.blocked = make(map[int]*Thread)
	e.terminated = nil
	e.semaphores = make(map[string]*Semaphore)
	e.monitors = make(map[string]*Monitor)
	e.nextThreadID = 1
	e.unknownResourceOps = 0
	e.log = trace.NewLog()
	e.mapper.Reset()
	e.cores = make([]*CPUCore, e.cfg.CoreCount)
	for i := range e.cores {
		e.cores[i] = &CPUCore{ID: i}
	}
}

// Config returns the active configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// AddThread admits a new thread at the current clock tick. The thread is
// mapped to a kernel context immediately and becomes ready after the fixed
// admission delay, at the start of the next tick.
func (e *Engine) AddThread(name string, priority int, instructions []Instruction) *Thread {
	t := NewThread(e.nextThreadID, name, priority, instructions, e.Clock)
	e.nextThreadID++
	t.KernelID = e.mapper.Map()
	t.ReadyAt = e.Clock + admissionDelay
	e.threads = append(e.threads, t)
	e.logf(trace.LevelInfo, "thread %s admitted (priority %d, kernel thread %d)",
		t.Name, t.Priority, t.KernelID)
	return t
}

// AddSemaphore registers a named counting semaphore. Names must be unique
// within the semaphore registry.
func (e *Engine) AddSemaphore(name string, initial int) (*Semaphore, error) {
	if _, exists := e.semaphores[name]; exists {
		return nil, fmt.Errorf("semaphore %q already registered", name)
	}
	s := NewSemaphore(name, initial)
	e.semaphores[name] = s
	e.logf(trace.LevelInfo, "semaphore %s created (value %d)", name, initial)
	return s, nil
}

// AddMonitor registers a named monitor. Names must be unique within the
// monitor registry.
func (e *Engine) AddMonitor(name string) (*Monitor, error) {
	if _, exists := e.monitors[name]; exists {
		return nil, fmt.Errorf("monitor %q already registered", name)
	}
	m := NewMonitor(name)
	e.monitors[name] = m
	e.logf(trace.LevelInfo, "monitor %s created", name)
	return m, nil
}

// Tick advances the simulation by one discrete step:
//  1. increment the clock
//  2. promote admitted threads whose admission delay has elapsed
//  3. advance every thread's timers
//  4. let each busy core (ascending id) execute one instruction and apply
//     its side effects; terminate or preempt the resident thread as needed
//  5. fill idle, dispatch-eligible cores (ascending id) from the ready queue
func (e *Engine) Tick() {
	e.Clock++

	for _, t := range e.threads {
		if t.State == StateNew && e.Clock >= t.ReadyAt {
			t.SetState(StateReady)
			e.ready.Enqueue(t)
			e.logf(trace.LevelInfo, "thread %s is ready", t.Name)
		}
	}

	for _, t := range e.threads {
		t.Tick()
	}

	for _, core := range e.cores {
		core.Tick()
		if core.IsIdle() {
			continue
		}
		t := core.Current()
		if in, ok := t.Execute(); ok {
			e.apply(core, t, in)
		}
		if core.IsIdle() {
			// the instruction blocked the thread
			continue
		}
		if t.Completed() {
			core.Release()
			e.terminate(t)
			continue
		}
		if e.scheduler.ShouldPreempt(t) {
			core.Release()
			t.QuantumTicks = 0
			t.SetState(StateReady)
			e.ready.Enqueue(t)
			e.logf(trace.LevelInfo, "thread %s preempted on core %d (quantum expired)", t.Name, core.ID)
		}
	}

	for _, core := range e.cores {
		if !core.IsIdle() || !e.dispatchEligible(core) {
			continue
		}
		if e.ready.Len() == 0 {
			break
		}
		next := e.scheduler.Select(e.ready)
		next.QuantumTicks = 0
		core.Assign(next)
		e.logf(trace.LevelInfo, "thread %s dispatched to core %d", next.Name, core.ID)
	}
}

// dispatchEligible reports whether a core may receive a new thread this
// tick. Under many-to-one there is a single kernel-visible execution
// context regardless of declared core count, so only the lowest-id core is
// ever eligible; every other model leaves all cores eligible.
func (e *Engine) dispatchEligible(core *CPUCore) bool {
	if ThreadingModel(e.cfg.ThreadingModel) == ModelManyToOne {
		return core.ID == 0
	}
	return true
}

// apply executes the side effects of one instruction. Unknown resource
// names are silent no-ops: the instruction is consumed but no queue or
// state changes, and a diagnostic counter and warning record are kept.
func (e *Engine) apply(core *CPUCore, t *Thread, in Instruction) {
	switch in.Type {
	case InstrCompute:
		// tick consumption already accounted by Execute

	case InstrWait:
		s := e.semaphores[in.Resource]
		if s == nil {
			e.unknownResource(t, in)
			return
		}
		if s.Wait(t) {
			e.block(core, t)
			e.logf(trace.LevelWarning, "thread %s blocked on semaphore %s", t.Name, s.Name)
		} else {
			e.logf(trace.LevelSuccess, "thread %s acquired semaphore %s", t.Name, s.Name)
		}

	case InstrSignal:
		s := e.semaphores[in.Resource]
		if s == nil {
			e.unknownResource(t, in)
			return
		}
		if released := s.Signal(); released != nil {
			e.unblock(released)
			e.logf(trace.LevelSuccess, "thread %s signaled semaphore %s, releasing %s",
				t.Name, s.Name, released.Name)
		} else {
			e.logf(trace.LevelInfo, "thread %s signaled semaphore %s", t.Name, s.Name)
		}

	case InstrEnterMonitor:
		m := e.monitors[in.Resource]
		if m == nil {
			e.unknownResource(t, in)
			return
		}
		if m.Enter(t) {
			e.block(core, t)
			e.logf(trace.LevelWarning, "thread %s blocked entering monitor %s", t.Name, m.Name)
		} else {
			e.logf(trace.LevelSuccess, "thread %s entered monitor %s", t.Name, m.Name)
		}

	case InstrExitMonitor:
		m := e.monitors[in.Resource]
		if m == nil {
			e.unknownResource(t, in)
			return
		}
		next, wasWaiting := m.Exit()
		if next != nil {
			e.unblock(next)
			if wasWaiting {
				e.logf(trace.LevelSuccess, "thread %s exited monitor %s, ownership passed to %s (was waiting)",
					t.Name, m.Name, next.Name)
			} else {
				e.logf(trace.LevelSuccess, "thread %s exited monitor %s, ownership passed to %s",
					t.Name, m.Name, next.Name)
			}
		} else {
			e.logf(trace.LevelInfo, "thread %s exited monitor %s", t.Name, m.Name)
		}

	case InstrMonitorWait:
		m := e.monitors[in.Resource]
		if m == nil {
			e.unknownResource(t, in)
			return
		}
		blocked, next := m.Wait(t)
		if blocked {
			e.block(core, t)
			e.logf(trace.LevelInfo, "thread %s waiting on monitor %s", t.Name, m.Name)
		}
		if next != nil {
			e.unblock(next)
			e.logf(trace.LevelSuccess, "monitor %s ownership passed to %s", m.Name, next.Name)
		}

	case InstrMonitorSignal:
		m := e.monitors[in.Resource]
		if m == nil {
			e.unknownResource(t, in)
			return
		}
		if woken := m.Signal(); woken != nil {
			e.unblock(woken)
			e.logf(trace.LevelSuccess, "thread %s signaled monitor %s, waking %s",
				t.Name, m.Name, woken.Name)
		} else {
			e.logf(trace.LevelInfo, "thread %s signaled monitor %s", t.Name, m.Name)
		}
	}
}

// block releases the thread's core and moves it to the blocked set.
func (e *Engine) block(core *CPUCore, t *Thread) {
	core.Release()
	t.SetState(StateBlocked)
	e.blocked[t.ID] = t
}

// unblock removes the thread from the blocked set and moves it to ready.
func (e *Engine) unblock(t *Thread) {
	delete(e.blocked, t.ID)
	t.SetState(StateReady)
	e.ready.Enqueue(t)
}

// terminate records completion and turnaround and moves the thread into the
// terminated collection.
func (e *Engine) terminate(t *Thread) {
	t.SetState(StateTerminated)
	t.CompletionTime = e.Clock
	t.TurnaroundTime = e.Clock - t.ArrivalTime
	e.terminated = append(e.terminated, t)
	e.logf(trace.LevelSuccess, "thread %s terminated (turnaround %d ticks)", t.Name, t.TurnaroundTime)
}

// unknownResource consumes the instruction without any state change and
// records the diagnostic.
func (e *Engine) unknownResource(t *Thread, in Instruction) {
	e.unknownResourceOps++
	e.logf(trace.LevelWarning, "thread %s referenced unknown resource %q (%s ignored)",
		t.Name, in.Resource, in.Type)
}

// logf appends to the engine's event log and mirrors the entry to logrus at
// debug level.
func (e *Engine) logf(level trace.Level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	e.log.Append(e.Clock, msg, level)
	logrus.Debugf("[tick %06d] %s", e.Clock, msg)
}

// Done reports whether every admitted thread has terminated. False before
// any thread is admitted.
func (e *Engine) Done() bool {
	return len(e.threads) > 0 && len(e.terminated) == len(e.threads)
}

// Stalled reports whether no thread can make progress: at least one thread
// is blocked, none is new, ready, or running, and every core is idle. The
// engine never resolves such a deadlock itself; drivers use Stalled to stop
// ticking.
func (e *Engine) Stalled() bool {
	if len(e.blocked) == 0 {
		return false
	}
	for _, t := range e.threads {
		switch t.State {
		case StateNew, StateReady, StateRunning:
			return false
		}
	}
	for _, core := range e.cores {
		if !core.IsIdle() {
			return false
		}
	}
	return true
}

// Threads returns a snapshot of the admitted threads in insertion order.
func (e *Engine) Threads() []*Thread {
	out := make([]*Thread, len(e.threads))
	copy(out, e.threads)
	return out
}

// Terminated returns a snapshot of the terminated threads in completion
// order.
func (e *Engine) Terminated() []*Thread {
	out := make([]*Thread, len(e.terminated))
	copy(out, e.terminated)
	return out
}

// Cores returns a snapshot of the core array in ascending id order.
func (e *Engine) Cores() []*CPUCore {
	out := make([]*CPUCore, len(e.cores))
	copy(out, e.cores)
	return out
}

// ReadyLen returns the current ready queue depth.
func (e *Engine) ReadyLen() int {
	return e.ready.Len()
}

// BlockedLen returns the current blocked set size.
func (e *Engine) BlockedLen() int {
	return len(e.blocked)
}

// Semaphore returns the registered semaphore with the given name, or nil.
func (e *Engine) Semaphore(name string) *Semaphore {
	return e.semaphores[name]
}

// Monitor returns the registered monitor with the given name, or nil.
func (e *Engine) Monitor(name string) *Monitor {
	return e.monitors[name]
}

// KernelThreads returns the number of distinct kernel contexts in use.
func (e *Engine) KernelThreads() int {
	return e.mapper.KernelThreads
}

// EventLog returns a snapshot of the full event history.
func (e *Engine) EventLog() []trace.Record {
	return e.log.Records()
}

// EventLogTail returns a snapshot of the most recent n event records.
func (e *Engine) EventLogTail(n int) []trace.Record {
	return e.log.Tail(n)
}
