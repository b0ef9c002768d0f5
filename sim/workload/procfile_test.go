package workload

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procsim/procsim/sim"
)

const rrProcessFile = `processcount 2   # Read 2 processes
runfor 10        # Run for 10 time units
use rr
quantum 2

# process list
process name P1 arrival 0 burst 3
process name P2 arrival 1 burst 2
end
process name ignored arrival 0 burst 1
`

func TestParseProcessFile_ReferenceFormat(t *testing.T) {
	// GIVEN a process file with comments, blank lines and trailing content after end
	spec, err := ParseProcessFile(strings.NewReader(rrProcessFile))
	require.NoError(t, err)

	// THEN every directive is read and parsing stops at end
	assert.Equal(t, 2, spec.ProcessCount)
	assert.Equal(t, int64(10), spec.RunFor)
	assert.Equal(t, "rr", spec.Use)
	require.NotNil(t, spec.Quantum)
	assert.Equal(t, int64(2), *spec.Quantum)
	assert.Equal(t, []sim.Process{
		{Name: "P1", Arrival: 0, Burst: 3},
		{Name: "P2", Arrival: 1, Burst: 2},
	}, spec.Processes)
	require.NoError(t, spec.Validate())
}

func TestParseProcessFile_ProcessKeysInAnyOrder(t *testing.T) {
	spec, err := ParseProcessFile(strings.NewReader("process burst 4 name A arrival 2\n"))
	require.NoError(t, err)
	assert.Equal(t, []sim.Process{{Name: "A", Arrival: 2, Burst: 4}}, spec.Processes)
}

func TestParseProcessFile_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  string
	}{
		{"unknown directive", "processcount 1\nfrobnicate 3\n", "line 2"},
		{"non-integer runfor", "runfor ten\n", "line 1"},
		{"missing value", "use\n", "line 1"},
		{"extra value", "quantum 2 3\n", "line 1"},
		{"missing burst", "process name P1 arrival 0\n", "line 1"},
		{"odd pairs", "process name P1 arrival\n", "line 1"},
		{"unknown process key", "process name P1 arrival 0 burst 1 priority 2\n", "line 1"},
		{"duplicate process key", "process name P1 name P2 arrival 0 burst 1\n", "line 1"},
		{"bad burst", "\n\nprocess name P1 arrival 0 burst x\n", "line 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProcessFile(strings.NewReader(tt.input))
			require.ErrorIs(t, err, ErrMalformedInput)
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestMarshalProcessFile_RoundTrip(t *testing.T) {
	// GIVEN a parsed spec
	spec, err := ParseProcessFile(strings.NewReader(rrProcessFile))
	require.NoError(t, err)

	// WHEN it is written back in the line format
	var buf bytes.Buffer
	require.NoError(t, MarshalProcessFile(&buf, spec))

	// THEN the canonical text is produced and parses to the same spec
	assert.Equal(t, `processcount 2
runfor 10
use rr
quantum 2
process name P1 arrival 0 burst 3
process name P2 arrival 1 burst 2
end
`, buf.String())
	again, err := ParseProcessFile(&buf)
	require.NoError(t, err)
	assert.Equal(t, spec, again)
}
