package sim

// Semaphore is a counting semaphore with a FIFO wait queue.
// Invariant: len(waitQ) == max(0, -Value) after every operation.
type Semaphore struct {
	Name  string
	Value int

	waitQ []*Thread
}

// NewSemaphore constructs a semaphore with the given initial value.
func NewSemaphore(name string, initial int) *Semaphore {
	return &Semaphore{Name: name, Value: initial}
}

// Wait decrements the value. If the result is negative the calling thread is
// enqueued at the tail of the wait queue and Wait reports that it must block;
// otherwise the caller may proceed.
func (s *Semaphore) Wait(t *Thread) bool {
	s.Value--
	if s.Value < 0 {
		s.waitQ = append(s.waitQ, t)
		return true
	}
	return false
}

// Signal increments the value and releases the longest-waiting thread, if
// any. FIFO fairness: the head of the wait queue is always released first.
// Returns nil when no thread was waiting.
func (s *Semaphore) Signal() *Thread {
	s.Value++
	if len(s.waitQ) == 0 {
		return nil
	}
	head := s.waitQ[0]
	s.waitQ = s.waitQ[1:]
	return head
}

// QueueLen returns the number of threads blocked on this semaphore.
func (s *Semaphore) QueueLen() int {
	return len(s.waitQ)
}
