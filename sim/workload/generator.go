package workload

import (
	"fmt"
	"math"
	"sort"

	"github.com/procsim/procsim/sim"
)

// GenerateConfig parameterizes a random process set.
type GenerateConfig struct {
	Seed       int64
	Count      int
	RunFor     int64
	Use        string
	Quantum    int64 // written only when positive
	MaxArrival int64 // arrivals are drawn uniformly from [0, MaxArrival]
	MinBurst   int64
	MaxBurst   int64
}

// Validate checks generator parameter ranges.
func (c GenerateConfig) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", c.Count)
	}
	// Both ranges are drawn as Int63n(width); the width must stay positive.
	if c.MaxArrival < 0 || c.MaxArrival == math.MaxInt64 {
		return fmt.Errorf("max arrival must be in [0, %d], got %d", int64(math.MaxInt64-1), c.MaxArrival)
	}
	if c.MinBurst <= 0 || c.MaxBurst < c.MinBurst {
		return fmt.Errorf("burst range must satisfy 0 < min <= max, got [%d, %d]", c.MinBurst, c.MaxBurst)
	}
	return nil
}

// Generate creates a process set from a GenerateConfig.
// Deterministic given the same config: arrivals and bursts come from
// separate seeded streams, so widening the burst range leaves arrivals intact.
// Processes are ordered by arrival and named P1..Pn in that order.
func Generate(config GenerateConfig) (*Spec, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}

	streams := sim.NewSeededStreams(config.Seed)
	arrivals := streams.Rand(sim.StreamArrivals)
	bursts := streams.Rand(sim.StreamBursts)

	procs := make([]sim.Process, config.Count)
	for i := range procs {
		procs[i] = sim.Process{
			Arrival: arrivals.Int63n(config.MaxArrival + 1),
			Burst:   config.MinBurst + bursts.Int63n(config.MaxBurst-config.MinBurst+1),
		}
	}
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].Arrival < procs[j].Arrival
	})
	for i := range procs {
		procs[i].Name = fmt.Sprintf("P%d", i+1)
	}

	spec := &Spec{
		ProcessCount: config.Count,
		RunFor:       config.RunFor,
		Use:          config.Use,
		Processes:    procs,
	}
	if config.Quantum > 0 {
		q := config.Quantum
		spec.Quantum = &q
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return spec, nil
}
