// Tracks per-process and run-wide statistics reported at the end of a simulation.

package sim

// ProcessStats is the final, read-only view of one process after a run.
type ProcessStats struct {
	Name       string `json:"name" yaml:"name"`
	Arrival    int64  `json:"arrival" yaml:"arrival"`
	Burst      int64  `json:"burst" yaml:"burst"`
	Remaining  int64  `json:"remaining" yaml:"remaining"`
	Wait       int64  `json:"wait" yaml:"wait"`
	Turnaround int64  `json:"turnaround" yaml:"turnaround"` // meaningful only if Finished
	Completion int64  `json:"completion,omitempty" yaml:"completion,omitempty"`
	Finished   bool   `json:"finished" yaml:"finished"`
}

func newProcessStats(ps *ProcessState) ProcessStats {
	return ProcessStats{
		Name:       ps.Name,
		Arrival:    ps.Arrival,
		Burst:      ps.Burst,
		Remaining:  ps.Remaining,
		Wait:       ps.Wait,
		Turnaround: ps.Turnaround,
		Completion: ps.Completion,
		Finished:   ps.Finished(),
	}
}

// Metrics aggregates statistics about the simulation for final reporting.
type Metrics struct {
	CompletedProcesses int   // number of processes that finished before the horizon
	TotalWait          int64 // sum of wait over all processes
	TotalTurnaround    int64 // sum of turnaround over finished processes
	BusyTicks          int64 // ticks in which a process consumed CPU time
	IdleTicks          int64 // ticks with an empty ready queue
	Selections         int   // number of selected events
	ContextSwitches    int   // selections that replaced a still-unfinished process
}

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// AverageWait returns the mean wait over n processes (0 when n is 0).
func (m *Metrics) AverageWait(n int) float64 {
	if n == 0 {
		return 0
	}
	return float64(m.TotalWait) / float64(n)
}

// AverageTurnaround returns the mean turnaround over completed processes.
func (m *Metrics) AverageTurnaround() float64 {
	if m.CompletedProcesses == 0 {
		return 0
	}
	return float64(m.TotalTurnaround) / float64(m.CompletedProcesses)
}

// Throughput returns completed processes per tick over a run that ended at end.
func (m *Metrics) Throughput(end int64) float64 {
	if end == 0 {
		return 0
	}
	return float64(m.CompletedProcesses) / float64(end)
}

// Utilization returns the fraction of ticks the CPU was busy.
func (m *Metrics) Utilization(end int64) float64 {
	if end == 0 {
		return 0
	}
	return float64(m.BusyTicks) / float64(end)
}
