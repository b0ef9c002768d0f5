// Reads and writes the line-oriented process file format:
//
//	processcount 2   # comment
//	runfor 10
//	use rr
//	quantum 2
//	process name P1 arrival 0 burst 3
//	process name P2 arrival 1 burst 2
//	end

package workload

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/procsim/procsim/sim"
)

// directive is the closed set of line keywords.
type directive int

const (
	dirProcessCount directive = iota
	dirRunFor
	dirUse
	dirQuantum
	dirProcess
	dirEnd
)

var directives = map[string]directive{
	"processcount": dirProcessCount,
	"runfor":       dirRunFor,
	"use":          dirUse,
	"quantum":      dirQuantum,
	"process":      dirProcess,
	"end":          dirEnd,
}

// ParseProcessFile parses the line format. Text after '#' is a comment and
// blank lines are skipped; parsing stops at "end". The result is not validated.
func ParseProcessFile(r io.Reader) (*Spec, error) {
	spec := &Spec{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		dir, ok := directives[fields[0]]
		if !ok {
			return nil, malformed(lineNo, "unrecognized line %q", strings.TrimSpace(line))
		}
		if dir == dirEnd {
			break
		}
		if err := applyDirective(spec, dir, fields); err != nil {
			return nil, malformed(lineNo, "%v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading process file: %w", err)
	}
	return spec, nil
}

func applyDirective(spec *Spec, dir directive, fields []string) error {
	if dir == dirProcess {
		p, err := parseProcess(fields[1:])
		if err != nil {
			return err
		}
		spec.Processes = append(spec.Processes, p)
		return nil
	}

	if len(fields) != 2 {
		return fmt.Errorf("%s expects exactly one value, got %d", fields[0], len(fields)-1)
	}
	value := fields[1]
	switch dir {
	case dirUse:
		spec.Use = value
	case dirProcessCount:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("processcount: %q is not an integer", value)
		}
		spec.ProcessCount = n
	case dirRunFor:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("runfor: %q is not an integer", value)
		}
		spec.RunFor = n
	case dirQuantum:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("quantum: %q is not an integer", value)
		}
		spec.Quantum = &n
	}
	return nil
}

// parseProcess reads "name X arrival A burst B" key/value pairs. All three
// keys are required, each exactly once.
func parseProcess(fields []string) (sim.Process, error) {
	var p sim.Process
	if len(fields)%2 != 0 {
		return p, fmt.Errorf("process: expected key/value pairs, got %q", strings.Join(fields, " "))
	}
	seen := make(map[string]bool, 3)
	for i := 0; i < len(fields); i += 2 {
		key, value := fields[i], fields[i+1]
		if seen[key] {
			return p, fmt.Errorf("process: duplicate %q", key)
		}
		seen[key] = true
		switch key {
		case "name":
			p.Name = value
		case "arrival", "burst":
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return p, fmt.Errorf("process %s: %q is not an integer", key, value)
			}
			if key == "arrival" {
				p.Arrival = n
			} else {
				p.Burst = n
			}
		default:
			return p, fmt.Errorf("process: unknown parameter %q", key)
		}
	}
	for _, key := range []string{"name", "arrival", "burst"} {
		if !seen[key] {
			return p, fmt.Errorf("process: missing %q", key)
		}
	}
	return p, nil
}

func malformed(lineNo int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedInput, lineNo, fmt.Sprintf(format, args...))
}

// MarshalProcessFile writes spec in the line format, ending with "end".
func MarshalProcessFile(w io.Writer, spec *Spec) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "processcount %d\n", spec.ProcessCount)
	fmt.Fprintf(bw, "runfor %d\n", spec.RunFor)
	fmt.Fprintf(bw, "use %s\n", spec.Use)
	if spec.Quantum != nil {
		fmt.Fprintf(bw, "quantum %d\n", *spec.Quantum)
	}
	for _, p := range spec.Processes {
		fmt.Fprintf(bw, "process name %s arrival %d burst %d\n", p.Name, p.Arrival, p.Burst)
	}
	fmt.Fprintln(bw, "end")
	return bw.Flush()
}
