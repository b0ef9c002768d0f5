// Package testutil provides shared test infrastructure for the simulator.
// It loads golden process-file / report pairs used across sim/ test packages.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"
)

// GoldenCase is one input file and the exact text report it must produce.
type GoldenCase struct {
	Name     string
	Input    []byte
	Expected string
}

// goldenDir resolves testdata/golden relative to this source file:
// sim/internal/testutil/ → repo root testdata/.
func goldenDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "golden")
}

// LoadGoldenCases loads every <name>.in with its <name>.out, sorted by name.
func LoadGoldenCases(t *testing.T) []GoldenCase {
	t.Helper()
	dir := goldenDir(t)
	inputs, err := filepath.Glob(filepath.Join(dir, "*.in"))
	if err != nil {
		t.Fatalf("Failed to list golden inputs: %v", err)
	}
	if len(inputs) == 0 {
		t.Fatalf("No golden inputs found in %s", dir)
	}
	sort.Strings(inputs)

	cases := make([]GoldenCase, 0, len(inputs))
	for _, in := range inputs {
		name := strings.TrimSuffix(filepath.Base(in), ".in")
		input, err := os.ReadFile(in)
		if err != nil {
			t.Fatalf("Failed to read golden input %s: %v", in, err)
		}
		expected, err := os.ReadFile(filepath.Join(dir, name+".out"))
		if err != nil {
			t.Fatalf("Failed to read golden output for %s: %v", name, err)
		}
		cases = append(cases, GoldenCase{Name: name, Input: input, Expected: string(expected)})
	}
	return cases
}
