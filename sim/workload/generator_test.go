package workload

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procsim/procsim/sim"
)

func baseGenerateConfig() GenerateConfig {
	return GenerateConfig{
		Seed: 42, Count: 8, RunFor: 60, Use: "rr", Quantum: 3,
		MaxArrival: 20, MinBurst: 1, MaxBurst: 9,
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(baseGenerateConfig())
	require.NoError(t, err)
	b, err := Generate(baseGenerateConfig())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_RespectsRangesAndOrdering(t *testing.T) {
	config := baseGenerateConfig()
	spec, err := Generate(config)
	require.NoError(t, err)

	require.Len(t, spec.Processes, config.Count)
	assert.Equal(t, config.Count, spec.ProcessCount)
	require.NotNil(t, spec.Quantum)
	for i, p := range spec.Processes {
		assert.GreaterOrEqual(t, p.Arrival, int64(0))
		assert.LessOrEqual(t, p.Arrival, config.MaxArrival)
		assert.GreaterOrEqual(t, p.Burst, config.MinBurst)
		assert.LessOrEqual(t, p.Burst, config.MaxBurst)
		if i > 0 {
			assert.GreaterOrEqual(t, p.Arrival, spec.Processes[i-1].Arrival, "processes must be sorted by arrival")
		}
	}
	assert.Equal(t, "P1", spec.Processes[0].Name)
}

func TestGenerate_BurstRangeDoesNotShiftArrivals(t *testing.T) {
	narrow := baseGenerateConfig()
	wide := baseGenerateConfig()
	wide.MaxBurst = 50

	a, err := Generate(narrow)
	require.NoError(t, err)
	b, err := Generate(wide)
	require.NoError(t, err)

	arrivals := func(s *Spec) []int64 {
		out := make([]int64, len(s.Processes))
		for i, p := range s.Processes {
			out[i] = p.Arrival
		}
		return out
	}
	assert.Equal(t, arrivals(a), arrivals(b))
}

func TestGenerate_RunsThroughSimulator(t *testing.T) {
	spec, err := Generate(baseGenerateConfig())
	require.NoError(t, err)
	config, err := spec.SchedulerConfig()
	require.NoError(t, err)

	result, err := sim.Run(config, spec.ProcessList())
	require.NoError(t, err)
	assert.Equal(t, config.RunFor, result.End)
}

func TestGenerate_InvalidConfig(t *testing.T) {
	config := baseGenerateConfig()
	config.MinBurst = 0
	_, err := Generate(config)
	assert.Error(t, err)

	config = baseGenerateConfig()
	config.Quantum = 0 // rr without quantum
	_, err = Generate(config)
	assert.ErrorIs(t, err, sim.ErrMissingQuantum)
}

func TestGenerateConfig_Validate_ExtremeRanges(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GenerateConfig)
		wantErr bool
	}{
		{"max arrival at int64 limit", func(c *GenerateConfig) { c.MaxArrival = math.MaxInt64 }, true},
		{"max arrival one below limit", func(c *GenerateConfig) { c.MaxArrival = math.MaxInt64 - 1 }, false},
		{"widest burst range", func(c *GenerateConfig) { c.MinBurst = 1; c.MaxBurst = math.MaxInt64 }, false},
		{"negative count", func(c *GenerateConfig) { c.Count = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := baseGenerateConfig()
			tt.mutate(&config)
			if tt.wantErr {
				assert.Error(t, config.Validate())
				return
			}
			// THEN generation draws from the range without panicking
			require.NoError(t, config.Validate())
			assert.NotPanics(t, func() {
				_, err := Generate(config)
				assert.NoError(t, err)
			})
		})
	}
}
