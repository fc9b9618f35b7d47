package sim

// CPUCore is an execution slot holding at most one running thread.
// Invariant: IsIdle() iff no current thread.
type CPUCore struct {
	ID        int
	BusyTicks int64 // Ticks spent with a resident thread

	current *Thread
}

// IsIdle reports whether the core has no resident thread.
func (c *CPUCore) IsIdle() bool {
	return c.current == nil
}

// Current returns the resident thread, or nil when idle.
func (c *CPUCore) Current() *Thread {
	return c.current
}

// Assign binds the thread to this core and transitions it to running.
func (c *CPUCore) Assign(t *Thread) {
	c.current = t
	t.SetState(StateRunning)
}

// Release detaches and returns the resident thread, leaving the core idle.
func (c *CPUCore) Release() *Thread {
	t := c.current
	c.current = nil
	return t
}

// Tick advances the busy counter iff the core is not idle.
func (c *CPUCore) Tick() {
	if c.current != nil {
		c.BusyTicks++
	}
}
