package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/procsim/procsim/sim"
	"github.com/procsim/procsim/sim/trace"
)

// Document is the machine-readable form of a Result.
type Document struct {
	Processes   int                 `json:"processes" yaml:"processes"`
	Policy      string              `json:"policy" yaml:"policy"`
	PolicyLabel string              `json:"policy_label" yaml:"policy_label"`
	Quantum     int64               `json:"quantum,omitempty" yaml:"quantum,omitempty"`
	End         int64               `json:"end" yaml:"end"`
	Events      []trace.EventRecord `json:"events" yaml:"events"`
	Stats       []sim.ProcessStats  `json:"stats" yaml:"stats"`
	Summary     Summary             `json:"summary" yaml:"summary"`
}

// Summary holds run-wide aggregates.
type Summary struct {
	Completed         int     `json:"completed" yaml:"completed"`
	AverageWait       float64 `json:"average_wait" yaml:"average_wait"`
	AverageTurnaround float64 `json:"average_turnaround" yaml:"average_turnaround"`
	Throughput        float64 `json:"throughput" yaml:"throughput"`
	Utilization       float64 `json:"utilization" yaml:"utilization"`
	BusyTicks         int64   `json:"busy_ticks" yaml:"busy_ticks"`
	IdleTicks         int64   `json:"idle_ticks" yaml:"idle_ticks"`
	ContextSwitches   int     `json:"context_switches" yaml:"context_switches"`
}

// NewDocument builds the structured view of result.
func NewDocument(result *sim.Result) *Document {
	m := result.Metrics
	return &Document{
		Processes:   result.Config.ProcessCount,
		Policy:      result.Config.Policy.Name(),
		PolicyLabel: result.Config.Policy.Label(),
		Quantum:     result.Config.Quantum,
		End:         result.End,
		Events:      result.Trace.Events,
		Stats:       result.Stats,
		Summary: Summary{
			Completed:         m.CompletedProcesses,
			AverageWait:       m.AverageWait(len(result.Stats)),
			AverageTurnaround: m.AverageTurnaround(),
			Throughput:        m.Throughput(result.End),
			Utilization:       m.Utilization(result.End),
			BusyTicks:         m.BusyTicks,
			IdleTicks:         m.IdleTicks,
			ContextSwitches:   m.ContextSwitches,
		},
	}
}

// WriteJSON renders result as indented JSON.
func WriteJSON(w io.Writer, result *sim.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(result)); err != nil {
		return fmt.Errorf("JSON marshal failed: %w", err)
	}
	return nil
}

// WriteYAML renders result as YAML.
func WriteYAML(w io.Writer, result *sim.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(result)); err != nil {
		return fmt.Errorf("YAML marshal failed: %w", err)
	}
	return enc.Close()
}
