// Implements the ReadyQueue, which holds all threads eligible for core
// assignment. Threads are enqueued on admission, on unblock, and on
// preemption; removal order is decided by the active Scheduler.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue represents the ordered pool of runnable threads waiting for a
// core. Insertion is always at the tail; schedulers decide which entry is
// removed next.
type ReadyQueue struct {
	queue []*Thread
}

// Enqueue adds a thread to the back of the ready queue.
func (rq *ReadyQueue) Enqueue(t *Thread) {
	rq.queue = append(rq.queue, t)
}

// Len returns the number of threads in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Peek returns the thread at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *Thread {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Dequeue removes and returns the thread at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *Thread {
	if len(rq.queue) == 0 {
		return nil
	}
	head := rq.queue[0]
	rq.queue = rq.queue[1:]
	return head
}

// RemoveAt removes and returns the thread at index i, preserving the
// relative order of the remainder. Returns nil if i is out of range.
func (rq *ReadyQueue) RemoveAt(i int) *Thread {
	if i < 0 || i >= len(rq.queue) {
		return nil
	}
	t := rq.queue[i]
	rq.queue = append(rq.queue[:i], rq.queue[i+1:]...)
	return t
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers within the
// sim package may iterate over it but MUST NOT append to or reslice it.
func (rq *ReadyQueue) Items() []*Thread {
	return rq.queue
}

// Reset empties the queue.
func (rq *ReadyQueue) Reset() {
	rq.queue = nil
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, t := range rq.queue {
		sb.WriteString(fmt.Sprint(t))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
