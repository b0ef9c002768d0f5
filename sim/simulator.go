// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/procsim/procsim/sim/trace"
)

// Result is what a finished run hands to the rendering layer.
type Result struct {
	Config  SchedulerConfig
	Trace   *trace.SimulationTrace
	End     int64          // final tick, always equal to Config.RunFor
	Stats   []ProcessStats // in source-list order
	Metrics *Metrics
}

// Simulator is the core object that holds simulation time, the ready queue,
// the running slot and the tick loop. One Simulator performs one run.
type Simulator struct {
	Clock  int64
	RunFor int64
	Config SchedulerConfig
	// ReadyQ holds every admitted, unfinished process, including the running one.
	ReadyQ *ReadyQueue
	// Running is the process holding the CPU for the current tick, nil when free.
	Running *ProcessState
	// Processes in source-list order. Arrivals at the same tick are admitted in this order.
	Processes []*ProcessState
	Trace     *trace.SimulationTrace
	Metrics   *Metrics

	policy  Policy
	nextSeq int
	result  *Result
	// lastHolder is the process most recently selected, kept after RR expiry.
	lastHolder *ProcessState
}

// NewSimulator validates the config against the process list and prepares a run.
// It fails fast on an unknown policy, a missing RR quantum, or a process count
// that differs from config.ProcessCount.
func NewSimulator(config SchedulerConfig, processes []Process, traceConfig trace.TraceConfig) (*Simulator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(processes) != config.ProcessCount {
		return nil, fmt.Errorf("%w: processcount is %d but %d processes were supplied",
			ErrProcessCountMismatch, config.ProcessCount, len(processes))
	}
	policy, err := NewPolicy(config)
	if err != nil {
		return nil, err
	}

	states := make([]*ProcessState, len(processes))
	for i, p := range processes {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		states[i] = NewProcessState(p)
	}

	return &Simulator{
		Clock:     0,
		RunFor:    config.RunFor,
		Config:    config,
		ReadyQ:    &ReadyQueue{},
		Processes: states,
		Trace:     trace.NewSimulationTrace(traceConfig),
		Metrics:   NewMetrics(),
		policy:    policy,
	}, nil
}

// Run simulates the configured processes and returns the result.
// Convenience wrapper over NewSimulator + Simulator.Run with full event tracing.
func Run(config SchedulerConfig, processes []Process) (*Result, error) {
	s, err := NewSimulator(config, processes, trace.TraceConfig{Level: trace.TraceLevelEvents})
	if err != nil {
		return nil, err
	}
	return s.Run(), nil
}

// Policy returns the active scheduling policy.
func (sim *Simulator) Policy() Policy {
	return sim.policy
}

// Done reports whether the clock has reached the horizon.
func (sim *Simulator) Done() bool {
	return sim.Clock >= sim.RunFor
}

// Run steps the clock until it reaches the horizon. The horizon is a hard
// stop: unfinished or unarrived processes keep their current statistics.
// Calling Run again returns the same result.
func (sim *Simulator) Run() *Result {
	if sim.result != nil {
		return sim.result
	}
	logrus.Infof("Starting simulation: policy=%s, processes=%d, runfor=%d, quantum=%d",
		sim.policy.Kind(), len(sim.Processes), sim.RunFor, sim.Config.Quantum)

	for !sim.Done() {
		sim.Step()
	}

	stats := make([]ProcessStats, len(sim.Processes))
	for i, ps := range sim.Processes {
		stats[i] = newProcessStats(ps)
		sim.Metrics.TotalWait += ps.Wait
		if ps.Finished() {
			sim.Metrics.CompletedProcesses++
			sim.Metrics.TotalTurnaround += ps.Turnaround
		}
	}
	sim.result = &Result{
		Config:  sim.Config,
		Trace:   sim.Trace,
		End:     sim.Clock,
		Stats:   stats,
		Metrics: sim.Metrics,
	}
	logrus.Infof("[tick %07d] Simulation ended, %d/%d processes finished",
		sim.Clock, sim.Metrics.CompletedProcesses, len(sim.Processes))
	return sim.result
}

// Step advances the simulation by exactly one tick:
// arrivals, selection/preemption, clock advance, consumption, wait accounting.
// No-op once the horizon is reached.
func (sim *Simulator) Step() {
	if sim.Done() {
		return
	}
	sim.admitArrivals()
	sim.dispatch()
	sim.Clock++
	sim.consume()
}

func (sim *Simulator) admitArrivals() {
	for _, ps := range sim.Processes {
		if ps.Arrival != sim.Clock {
			continue
		}
		ps.Start = sim.Clock
		ps.Seq = sim.nextSeq
		ps.Status = StatusReady
		sim.nextSeq++
		sim.policy.Admit(sim.ReadyQ, ps)
		logrus.Debugf("[tick %07d] %s arrived, queue=%v", sim.Clock, ps.Name, sim.ReadyQ)
		sim.Trace.Record(trace.Arrived(sim.Clock, ps.Name))
	}
}

func (sim *Simulator) dispatch() {
	next := sim.policy.Pick(sim.ReadyQ, sim.Running)
	if next == nil {
		logrus.Debugf("[tick %07d] Idle", sim.Clock)
		sim.Trace.Record(trace.Idle(sim.Clock))
		sim.Metrics.IdleTicks++
		return
	}
	if next == sim.Running {
		return
	}
	if sim.Running != nil {
		sim.Running.Status = StatusReady
	}
	if sim.lastHolder != nil && sim.lastHolder != next && !sim.lastHolder.Finished() {
		sim.Metrics.ContextSwitches++
	}
	sim.Running = next
	sim.lastHolder = next
	next.Status = StatusRunning
	sim.Metrics.Selections++
	logrus.Debugf("[tick %07d] %s selected (burst %d)", sim.Clock, next.Name, next.Remaining)
	sim.Trace.Record(trace.Selected(sim.Clock, next.Name, next.Remaining))
}

func (sim *Simulator) consume() {
	consumed := sim.Running
	if consumed == nil {
		return
	}
	sim.Metrics.BusyTicks++
	consumed.Remaining--

	if consumed.Remaining <= 0 {
		consumed.Remaining = 0
		consumed.Completion = sim.Clock
		consumed.Turnaround = sim.Clock - consumed.Start
		consumed.Status = StatusFinished
		sim.ReadyQ.Remove(consumed)
		sim.Running = nil
		logrus.Debugf("[tick %07d] %s finished, turnaround=%d", sim.Clock, consumed.Name, consumed.Turnaround)
		sim.Trace.Record(trace.Finished(sim.Clock, consumed.Name))
	} else if sim.policy.Expire(sim.ReadyQ, consumed) {
		consumed.Status = StatusReady
		sim.Running = nil
		logrus.Debugf("[tick %07d] %s preempted (remaining %d), queue=%v", sim.Clock, consumed.Name, consumed.Remaining, sim.ReadyQ)
	}

	for _, ps := range sim.ReadyQ.Items() {
		if ps != consumed {
			ps.Wait++
		}
	}
}
