// Package trace provides the event log of a scheduling simulation.
// This package has no dependencies on sim/; it stores pure data types.
package trace

import "fmt"

// EventKind identifies what happened at a tick.
type EventKind string

const (
	KindArrived  EventKind = "arrived"
	KindSelected EventKind = "selected"
	KindFinished EventKind = "finished"
	KindIdle     EventKind = "idle"
)

// EventRecord captures a single scheduling event.
type EventRecord struct {
	Clock   int64     `json:"time" yaml:"time"`
	Kind    EventKind `json:"kind" yaml:"kind"`
	Process string    `json:"process,omitempty" yaml:"process,omitempty"` // empty for idle
	Burst   int64     `json:"burst,omitempty" yaml:"burst,omitempty"`     // remaining burst, selected only
}

// Arrived returns the record for a process admitted at clock.
func Arrived(clock int64, process string) EventRecord {
	return EventRecord{Clock: clock, Kind: KindArrived, Process: process}
}

// Selected returns the record for a process given the CPU with burst ticks remaining.
func Selected(clock int64, process string, burst int64) EventRecord {
	return EventRecord{Clock: clock, Kind: KindSelected, Process: process, Burst: burst}
}

// Finished returns the record for a process completing at clock.
func Finished(clock int64, process string) EventRecord {
	return EventRecord{Clock: clock, Kind: KindFinished, Process: process}
}

// Idle returns the record for a tick with nothing to run.
func Idle(clock int64) EventRecord {
	return EventRecord{Clock: clock, Kind: KindIdle}
}

// String renders the event description without the time prefix,
// e.g. "P1 selected (burst 3)" or "Idle".
func (r EventRecord) String() string {
	switch r.Kind {
	case KindSelected:
		return fmt.Sprintf("%s selected (burst %d)", r.Process, r.Burst)
	case KindIdle:
		return "Idle"
	default:
		return fmt.Sprintf("%s %s", r.Process, r.Kind)
	}
}
