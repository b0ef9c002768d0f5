package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned for out-of-range scheduler parameters.
	ErrInvalidConfig = errors.New("invalid scheduler config")
	// ErrUnknownPolicy is returned when the policy selector is not one of FCFS, RR, SJF.
	ErrUnknownPolicy = errors.New("unknown scheduling policy")
	// ErrMissingQuantum is returned when Round Robin is configured without a positive quantum.
	ErrMissingQuantum = errors.New("missing quantum")
	// ErrProcessCountMismatch is returned when the process list length differs from ProcessCount.
	ErrProcessCountMismatch = errors.New("process count mismatch")
	// ErrInvalidProcess is returned for a malformed process descriptor.
	ErrInvalidProcess = errors.New("invalid process")
)

// PolicyKind selects the scheduling discipline. Decoded once from its short
// name by ParsePolicyKind; the engine only ever sees the enum.
type PolicyKind int

const (
	PolicyFCFS PolicyKind = iota
	PolicyRoundRobin
	PolicySJF
)

// policyNames and policyLabels are indexed by PolicyKind.
var (
	policyNames  = [...]string{"fcfs", "rr", "sjf"}
	policyLabels = [...]string{"First-Come First-Served", "Round Robin", "Preemptive Shortest Job First"}
)

// ParsePolicyKind maps a short policy name ("fcfs", "rr", "sjf") to its PolicyKind.
func ParsePolicyKind(name string) (PolicyKind, error) {
	for i, n := range policyNames {
		if n == name {
			return PolicyKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q (valid: fcfs, rr, sjf)", ErrUnknownPolicy, name)
}

// Valid reports whether k is one of the defined kinds.
func (k PolicyKind) Valid() bool {
	return k >= 0 && int(k) < len(policyNames)
}

// Name returns the short selector used in input files.
func (k PolicyKind) Name() string {
	if !k.Valid() {
		return fmt.Sprintf("PolicyKind(%d)", int(k))
	}
	return policyNames[k]
}

// Label returns the display name written in report headers.
func (k PolicyKind) Label() string {
	if !k.Valid() {
		return ""
	}
	return policyLabels[k]
}

func (k PolicyKind) String() string {
	return k.Name()
}

// SchedulerConfig groups the validated run parameters.
type SchedulerConfig struct {
	ProcessCount int        // expected number of processes
	RunFor       int64      // simulation horizon in ticks; the loop stops at this tick
	Policy       PolicyKind // scheduling discipline
	Quantum      int64      // RR time slice; 0 means "not set"
}

// Validate checks parameter ranges and the RR quantum requirement.
func (c SchedulerConfig) Validate() error {
	if !c.Policy.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownPolicy, int(c.Policy))
	}
	if c.ProcessCount < 0 {
		return fmt.Errorf("%w: processcount must be non-negative, got %d", ErrInvalidConfig, c.ProcessCount)
	}
	if c.RunFor < 0 {
		return fmt.Errorf("%w: runfor must be non-negative, got %d", ErrInvalidConfig, c.RunFor)
	}
	if c.Quantum < 0 {
		return fmt.Errorf("%w: quantum must be non-negative, got %d", ErrInvalidConfig, c.Quantum)
	}
	if c.Policy == PolicyRoundRobin && c.Quantum == 0 {
		return fmt.Errorf("%w: round robin requires a positive quantum", ErrMissingQuantum)
	}
	return nil
}
