package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/procsim/procsim/sim"
)

// WriteText renders the classic report: a header with the process count,
// policy and quantum, one "Time T: ..." line per event, and a footer with the
// final tick and each process's wait and (if it finished) turnaround.
func WriteText(w io.Writer, result *sim.Result) error {
	bw := bufio.NewWriter(w)
	config := result.Config

	fmt.Fprintf(bw, "%d processes\n", config.ProcessCount)
	fmt.Fprintf(bw, "Using %s\n", config.Policy.Label())
	if config.Quantum > 0 {
		fmt.Fprintf(bw, "Quantum %d\n", config.Quantum)
	}
	fmt.Fprintln(bw)

	for _, e := range result.Trace.Events {
		fmt.Fprintf(bw, "Time %d: %s\n", e.Clock, e)
	}

	fmt.Fprintf(bw, "Finished at time %d\n\n", result.End)
	for _, s := range result.Stats {
		fmt.Fprintf(bw, "%s wait %d", s.Name, s.Wait)
		if s.Finished {
			fmt.Fprintf(bw, " turnaround %d", s.Turnaround)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
