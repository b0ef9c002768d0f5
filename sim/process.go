// Defines the Process descriptor and the ProcessState that models one process's
// lifecycle inside a single simulation run.

package sim

import (
	"fmt"
)

// Process is the immutable descriptor supplied by the caller.
// Name uniqueness is assumed, not enforced.
type Process struct {
	Name    string `yaml:"name" json:"name"`
	Arrival int64  `yaml:"arrival" json:"arrival"` // tick at which the process becomes ready (>= 0)
	Burst   int64  `yaml:"burst" json:"burst"`     // total CPU ticks required (> 0)
}

// Validate checks the descriptor fields.
func (p Process) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: process name must not be empty", ErrInvalidProcess)
	}
	if p.Arrival < 0 {
		return fmt.Errorf("%w: process %q arrival must be non-negative, got %d", ErrInvalidProcess, p.Name, p.Arrival)
	}
	if p.Burst <= 0 {
		return fmt.Errorf("%w: process %q burst must be positive, got %d", ErrInvalidProcess, p.Name, p.Burst)
	}
	return nil
}

// ProcessStatus represents the lifecycle state of a process.
type ProcessStatus string

const (
	StatusUnarrived ProcessStatus = "unarrived"
	StatusReady     ProcessStatus = "ready"
	StatusRunning   ProcessStatus = "running"
	StatusFinished  ProcessStatus = "finished"
)

// ProcessState is the mutable per-run state of a process.
// Owned by the Simulator for the duration of Run; read-only afterwards.
type ProcessState struct {
	Process

	Remaining  int64         // CPU ticks still required; terminal at 0
	Wait       int64         // ticks spent in the ready queue while another process ran
	Start      int64         // tick at which the process was admitted
	Turnaround int64         // Completion - Start, set once when the process finishes
	Completion int64         // tick at which the process finished
	Status     ProcessStatus // unarrived, ready, running, finished
	Seq        int           // admission order, used as the deterministic tie-break key
}

// NewProcessState creates the unarrived state for a descriptor.
func NewProcessState(p Process) *ProcessState {
	return &ProcessState{
		Process:   p,
		Remaining: p.Burst,
		Status:    StatusUnarrived,
		Seq:       -1,
	}
}

// Finished reports whether the process completed before the horizon.
func (ps *ProcessState) Finished() bool {
	return ps.Status == StatusFinished
}

func (ps ProcessState) String() string {
	return fmt.Sprintf("Process: (Name: %s, Status: %s, Remaining: %d, Wait: %d)", ps.Name, ps.Status, ps.Remaining, ps.Wait)
}
