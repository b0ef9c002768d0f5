package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalEvents     int
	Arrivals        int
	Selections      int
	Completions     int
	IdleTicks       int64
	BusyTicks       int64
	ContextSwitches int     // selections that replaced a still-unfinished process
	Utilization     float64 // BusyTicks / end; 0 when end is 0
}

// Summarize computes aggregate statistics from a SimulationTrace that ran until end.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace, end int64) *TraceSummary {
	summary := &TraceSummary{}
	if st == nil {
		return summary
	}

	summary.TotalEvents = len(st.Events)
	holding := "" // process on the CPU before the current event
	for _, e := range st.Events {
		switch e.Kind {
		case KindArrived:
			summary.Arrivals++
		case KindSelected:
			summary.Selections++
			if holding != "" && holding != e.Process {
				summary.ContextSwitches++
			}
			holding = e.Process
		case KindFinished:
			summary.Completions++
			if holding == e.Process {
				holding = ""
			}
		case KindIdle:
			summary.IdleTicks++
		}
	}

	if end > 0 {
		summary.BusyTicks = end - summary.IdleTicks
		summary.Utilization = float64(summary.BusyTicks) / float64(end)
	}
	return summary
}
