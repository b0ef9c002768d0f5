// Implements the ReadyQueue, which holds every admitted process that has not finished.
// Processes are enqueued on arrival; the running process stays inside the queue.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue is an ordered container of processes awaiting or holding the CPU.
// Its ordering is maintained by the active Policy. A process appears at most once.
type ReadyQueue struct {
	queue []*ProcessState
}

// Enqueue adds a process to the back of the queue.
// Panics if the process is nil or already queued.
func (rq *ReadyQueue) Enqueue(p *ProcessState) {
	if p == nil {
		panic("Enqueue: process must not be nil")
	}
	if rq.Contains(p) {
		panic(fmt.Sprintf("Enqueue: process %q is already queued", p.Name))
	}
	rq.queue = append(rq.queue, p)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range rq.queue {
		sb.WriteString(p.Name)
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of queued processes.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *ProcessState {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Contains reports whether p is queued (by identity).
func (rq *ReadyQueue) Contains(p *ProcessState) bool {
	return rq.indexOf(p) >= 0
}

func (rq *ReadyQueue) indexOf(p *ProcessState) int {
	for i, q := range rq.queue {
		if q == p {
			return i
		}
	}
	return -1
}

// Remove deletes p from the queue, preserving the order of the others.
// Returns false if p was not queued.
func (rq *ReadyQueue) Remove(p *ProcessState) bool {
	i := rq.indexOf(p)
	if i < 0 {
		return false
	}
	rq.queue = append(rq.queue[:i], rq.queue[i+1:]...)
	return true
}

// MoveToBack removes p from its current position and appends it.
// Used for Round Robin quantum expiry.
func (rq *ReadyQueue) MoveToBack(p *ProcessState) {
	if !rq.Remove(p) {
		panic(fmt.Sprintf("MoveToBack: process %q is not queued", p.Name))
	}
	rq.queue = append(rq.queue, p)
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers may iterate
// over it but MUST NOT append to or reslice it. Use Reorder for sorting.
func (rq *ReadyQueue) Items() []*ProcessState {
	return rq.queue
}

// Reorder applies fn to the queue contents, allowing in-place reordering.
// fn MUST NOT change the slice length.
func (rq *ReadyQueue) Reorder(fn func([]*ProcessState)) {
	if fn == nil {
		panic("Reorder: fn must not be nil")
	}
	n := len(rq.queue)
	fn(rq.queue)
	if len(rq.queue) != n {
		panic(fmt.Sprintf("Reorder: fn changed queue length from %d to %d", n, len(rq.queue)))
	}
}
