package sim

import (
	"fmt"
	"sort"
)

// Policy encapsulates a queue discipline: where an arriving process is
// inserted, which process holds the CPU at a tick boundary, and what happens
// after a tick of CPU time that did not finish the running process.
//
// A Policy instance carries per-run state (the RR quantum counter) and must
// not be shared between simulations.
type Policy interface {
	Kind() PolicyKind
	// Admit inserts a newly arrived process into the queue.
	Admit(q *ReadyQueue, p *ProcessState)
	// Pick returns the process that should run for the coming tick, given the
	// currently running one (nil if the CPU is free). Returns nil only when the
	// queue is empty.
	Pick(q *ReadyQueue, running *ProcessState) *ProcessState
	// Expire is called after running consumed a tick without finishing.
	// Returns true if running must give up the CPU.
	Expire(q *ReadyQueue, running *ProcessState) bool
}

// FCFSPolicy runs processes to completion in arrival order.
type FCFSPolicy struct{}

func (f *FCFSPolicy) Kind() PolicyKind { return PolicyFCFS }

func (f *FCFSPolicy) Admit(q *ReadyQueue, p *ProcessState) {
	q.Enqueue(p)
}

func (f *FCFSPolicy) Pick(q *ReadyQueue, running *ProcessState) *ProcessState {
	if running != nil {
		return running
	}
	return q.Peek()
}

func (f *FCFSPolicy) Expire(_ *ReadyQueue, _ *ProcessState) bool {
	return false
}

// RoundRobinPolicy time-slices the CPU in FIFO order. A process whose quantum
// runs out is moved to the back of the queue; the next process is picked at
// the following tick boundary, which carries the same clock value.
type RoundRobinPolicy struct {
	quantum   int64
	remaining int64 // ticks left in the current slice
}

// NewRoundRobinPolicy creates a RoundRobinPolicy with the given time slice.
func NewRoundRobinPolicy(quantum int64) *RoundRobinPolicy {
	return &RoundRobinPolicy{quantum: quantum}
}

func (r *RoundRobinPolicy) Kind() PolicyKind { return PolicyRoundRobin }

// Quantum returns the configured time slice.
func (r *RoundRobinPolicy) Quantum() int64 { return r.quantum }

func (r *RoundRobinPolicy) Admit(q *ReadyQueue, p *ProcessState) {
	q.Enqueue(p)
}

func (r *RoundRobinPolicy) Pick(q *ReadyQueue, running *ProcessState) *ProcessState {
	if running != nil {
		return running
	}
	next := q.Peek()
	if next != nil {
		r.remaining = r.quantum
	}
	return next
}

func (r *RoundRobinPolicy) Expire(q *ReadyQueue, running *ProcessState) bool {
	r.remaining--
	if r.remaining > 0 {
		return false
	}
	q.MoveToBack(running)
	return true
}

// SJFPolicy is preemptive shortest-job-first on remaining burst.
// The queue is kept sorted by remaining burst (ascending), then by admission
// order (ascending). Only the running process's remaining burst ever changes,
// and it only shrinks, so removal and consumption keep the order intact.
type SJFPolicy struct{}

func (s *SJFPolicy) Kind() PolicyKind { return PolicySJF }

func (s *SJFPolicy) Admit(q *ReadyQueue, p *ProcessState) {
	q.Enqueue(p)
	q.Reorder(orderByRemaining)
}

func (s *SJFPolicy) Pick(q *ReadyQueue, _ *ProcessState) *ProcessState {
	return q.Peek()
}

func (s *SJFPolicy) Expire(_ *ReadyQueue, _ *ProcessState) bool {
	return false
}

func orderByRemaining(ps []*ProcessState) {
	sort.SliceStable(ps, func(i, j int) bool {
		if ps[i].Remaining != ps[j].Remaining {
			return ps[i].Remaining < ps[j].Remaining
		}
		return ps[i].Seq < ps[j].Seq
	})
}

// NewPolicy creates the Policy selected by the config.
// Returns an error for an unknown kind or an RR config without a positive quantum.
func NewPolicy(config SchedulerConfig) (Policy, error) {
	switch config.Policy {
	case PolicyFCFS:
		return &FCFSPolicy{}, nil
	case PolicyRoundRobin:
		if config.Quantum <= 0 {
			return nil, fmt.Errorf("%w: round robin requires a positive quantum, got %d", ErrMissingQuantum, config.Quantum)
		}
		return NewRoundRobinPolicy(config.Quantum), nil
	case PolicySJF:
		return &SJFPolicy{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(config.Policy))
	}
}
