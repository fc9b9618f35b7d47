package sim

// Monitor is a Mesa-style mutual-exclusion monitor with an entry queue and a
// single condition queue. On release, the condition queue is drained in
// preference to the entry queue: a thread signaled while waiting inside the
// monitor re-acquires ownership before any thread merely waiting to enter.
//
// Invariant: a thread never appears in both queues at once. Threads move
// owner → condition queue (Wait), entry queue → owner (Enter/Exit), and
// condition queue → out (Signal or Exit handoff); no path links the queues.
type Monitor struct {
	Name string

	owner  *Thread
	entryQ []*Thread
	condQ  []*Thread
}

// NewMonitor constructs a free monitor.
func NewMonitor(name string) *Monitor {
	return &Monitor{Name: name}
}

// Enter grants ownership immediately if the monitor is free. Otherwise the
// thread is appended to the entry queue and Enter reports that it must block.
func (m *Monitor) Enter(t *Thread) bool {
	if m.owner == nil {
		m.owner = t
		return false
	}
	m.entryQ = append(m.entryQ, t)
	return true
}

// Exit clears ownership and hands the monitor to the next thread: the head
// of the condition queue if non-empty (wasWaiting == true), else the head of
// the entry queue, else nobody (the monitor becomes free).
func (m *Monitor) Exit() (next *Thread, wasWaiting bool) {
	m.owner = nil
	if len(m.condQ) > 0 {
		next = m.condQ[0]
		m.condQ = m.condQ[1:]
		m.owner = next
		return next, true
	}
	if len(m.entryQ) > 0 {
		next = m.entryQ[0]
		m.entryQ = m.entryQ[1:]
		m.owner = next
		return next, false
	}
	return nil, false
}

// Wait moves the current owner to the tail of the condition queue and
// releases the monitor. Releasing a condition wait is an unconditional
// ownership release, so the head of the entry queue (if any) immediately
// becomes the new owner and is returned for the engine to unblock.
// A Wait by a non-owner is a no-op reporting "not blocked".
func (m *Monitor) Wait(t *Thread) (blocked bool, next *Thread) {
	if m.owner != t {
		return false, nil
	}
	m.condQ = append(m.condQ, t)
	m.owner = nil
	if len(m.entryQ) > 0 {
		next = m.entryQ[0]
		m.entryQ = m.entryQ[1:]
		m.owner = next
	}
	return true, next
}

// Signal dequeues the head of the condition queue for the engine to move to
// ready. Ownership is not transferred here; the woken thread re-acquires the
// monitor only through a later Exit/Wait release cycle.
func (m *Monitor) Signal() *Thread {
	if len(m.condQ) == 0 {
		return nil
	}
	head := m.condQ[0]
	m.condQ = m.condQ[1:]
	return head
}

// Owner returns the current owner, or nil if the monitor is free.
func (m *Monitor) Owner() *Thread {
	return m.owner
}

// EntryLen returns the number of threads queued to enter.
func (m *Monitor) EntryLen() int {
	return len(m.entryQ)
}

// CondLen returns the number of threads waiting on the condition.
func (m *Monitor) CondLen() int {
	return len(m.condQ)
}
