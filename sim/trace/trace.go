package trace

// TraceLevel controls the verbosity of event tracing.
type TraceLevel string

const (
	// TraceLevelNone disables event recording; only final statistics are produced.
	TraceLevelNone TraceLevel = "none"
	// TraceLevelEvents records every arrived, selected, finished and idle event.
	TraceLevelEvents TraceLevel = "events"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:   true,
	TraceLevelEvents: true,
	"":               true, // empty defaults to events
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// Enabled reports whether events are recorded.
func (c TraceConfig) Enabled() bool {
	return c.Level != TraceLevelNone
}

// SimulationTrace is the append-only event log of one simulation run.
// Events are stored in the order they were recorded, which is chronological.
type SimulationTrace struct {
	Config TraceConfig
	Events []EventRecord
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config: config,
		Events: make([]EventRecord, 0),
	}
}

// Record appends an event. No-op when tracing is disabled.
func (st *SimulationTrace) Record(record EventRecord) {
	if !st.Config.Enabled() {
		return
	}
	st.Events = append(st.Events, record)
}

// Len returns the number of recorded events.
func (st *SimulationTrace) Len() int {
	return len(st.Events)
}
