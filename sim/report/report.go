// Package report renders a finished simulation Result for humans and tools.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/procsim/procsim/sim"
)

// Format selects an output rendering.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

var validFormats = map[Format]bool{
	FormatText:  true,
	FormatTable: true,
	FormatJSON:  true,
	FormatYAML:  true,
}

// ParseFormat returns the Format for name. Empty selects text.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	f := Format(name)
	if !validFormats[f] {
		return "", fmt.Errorf("unknown output format %q (valid: text, table, json, yaml)", name)
	}
	return f, nil
}

// Write renders result to w in the given format.
func Write(w io.Writer, format Format, result *sim.Result) error {
	switch format {
	case FormatText, "":
		return WriteText(w, result)
	case FormatTable:
		return WriteTable(w, result)
	case FormatJSON:
		return WriteJSON(w, result)
	case FormatYAML:
		return WriteYAML(w, result)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// OutputPath derives the report file name from the input file name by
// replacing its extension with ".out" (processes.in -> processes.out).
func OutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".out"
}
