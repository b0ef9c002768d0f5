package workload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/procsim/procsim/sim"
)

// ErrMalformedInput is returned when a process file cannot be parsed.
var ErrMalformedInput = errors.New("malformed input")

// Spec is the parsed, not yet validated, content of a process file.
// Loaded from the line format via ParseProcessFile or from YAML via DecodeYAML.
type Spec struct {
	ProcessCount int           `yaml:"processcount" json:"processcount"`
	RunFor       int64         `yaml:"runfor" json:"runfor"`
	Use          string        `yaml:"use" json:"use"`
	Quantum      *int64        `yaml:"quantum,omitempty" json:"quantum,omitempty"` // nil = not set
	Processes    []sim.Process `yaml:"processes" json:"processes"`
}

// Validate checks the spec the way the input layer must before a run:
// policy name, quantum presence for rr, process count and process fields.
func (s *Spec) Validate() error {
	kind, err := sim.ParsePolicyKind(s.Use)
	if err != nil {
		return fmt.Errorf("invalid \"use\" parameter: %w", err)
	}
	if kind == sim.PolicyRoundRobin && s.Quantum == nil {
		return fmt.Errorf("%w: use rr requires a quantum line", sim.ErrMissingQuantum)
	}
	if s.Quantum != nil && *s.Quantum <= 0 {
		return fmt.Errorf("%w: quantum must be positive, got %d", sim.ErrInvalidConfig, *s.Quantum)
	}
	if s.ProcessCount < 0 {
		return fmt.Errorf("%w: processcount must be non-negative, got %d", sim.ErrInvalidConfig, s.ProcessCount)
	}
	if s.RunFor < 0 {
		return fmt.Errorf("%w: runfor must be non-negative, got %d", sim.ErrInvalidConfig, s.RunFor)
	}
	if s.ProcessCount != len(s.Processes) {
		return fmt.Errorf("%w: processcount is %d but %d processes are listed",
			sim.ErrProcessCountMismatch, s.ProcessCount, len(s.Processes))
	}
	for i, p := range s.Processes {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("process %d: %w", i+1, err)
		}
		// The line format splits on whitespace and strips from '#'.
		if strings.ContainsRune(p.Name, '#') || strings.IndexFunc(p.Name, unicode.IsSpace) >= 0 {
			return fmt.Errorf("process %d: %w: name %q cannot contain whitespace or '#'",
				i+1, sim.ErrInvalidProcess, p.Name)
		}
	}
	if kind != sim.PolicyRoundRobin && s.Quantum != nil {
		logrus.Warnf("quantum %d has no effect on %s scheduling", *s.Quantum, kind.Label())
	}
	return nil
}

// SchedulerConfig validates the spec and converts it into the engine's config.
func (s *Spec) SchedulerConfig() (sim.SchedulerConfig, error) {
	if err := s.Validate(); err != nil {
		return sim.SchedulerConfig{}, err
	}
	kind, _ := sim.ParsePolicyKind(s.Use)
	config := sim.SchedulerConfig{
		ProcessCount: s.ProcessCount,
		RunFor:       s.RunFor,
		Policy:       kind,
	}
	// Carried for every policy so the report header can echo it; only RR reads it.
	if s.Quantum != nil {
		config.Quantum = *s.Quantum
	}
	return config, nil
}

// ProcessList returns a copy of the descriptors in source order.
func (s *Spec) ProcessList() []sim.Process {
	out := make([]sim.Process, len(s.Processes))
	copy(out, s.Processes)
	return out
}

// IsYAMLPath reports whether path names a YAML spec rather than a line-format file.
func IsYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadSpec reads a process file from disk. YAML is chosen by extension;
// everything else is parsed as the line format.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading process file: %w", err)
	}
	if IsYAMLPath(path) {
		return DecodeYAML(bytes.NewReader(data))
	}
	return ParseProcessFile(bytes.NewReader(data))
}

// DecodeYAML parses a YAML spec with strict field checking: unknown keys are errors.
func DecodeYAML(r io.Reader) (*Spec, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var spec Spec
	if err := decoder.Decode(&spec); err != nil {
		if errors.Is(err, io.EOF) {
			return &spec, nil
		}
		return nil, fmt.Errorf("%w: parsing YAML spec: %v", ErrMalformedInput, err)
	}
	return &spec, nil
}

// EncodeYAML writes the spec as YAML.
func EncodeYAML(w io.Writer, spec *Spec) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(spec); err != nil {
		return fmt.Errorf("YAML marshal failed: %w", err)
	}
	return encoder.Close()
}
