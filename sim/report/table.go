package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/procsim/procsim/sim"
)

// WriteTable renders per-process statistics as a table with averages,
// throughput and CPU utilization in the footer.
func WriteTable(w io.Writer, result *sim.Result) error {
	config := result.Config
	title := config.Policy.Label()
	if config.Quantum > 0 {
		title = fmt.Sprintf("%s (quantum %d)", title, config.Quantum)
	}
	if _, err := fmt.Fprintf(w, "%s, finished at time %d\n", title, result.End); err != nil {
		return err
	}

	rows := make([][]string, 0, len(result.Stats))
	for _, s := range result.Stats {
		turnaround, completion := "-", "-"
		if s.Finished {
			turnaround = fmt.Sprint(s.Turnaround)
			completion = fmt.Sprint(s.Completion)
		}
		rows = append(rows, []string{
			s.Name,
			fmt.Sprint(s.Arrival),
			fmt.Sprint(s.Burst),
			fmt.Sprint(s.Remaining),
			fmt.Sprint(s.Wait),
			turnaround,
			completion,
		})
	}

	m := result.Metrics
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Name", "Arrival", "Burst", "Remaining", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", m.AverageWait(len(result.Stats))),
		fmt.Sprintf("Average\n%.2f", m.AverageTurnaround()),
		fmt.Sprintf("Throughput\n%.2f/t", m.Throughput(result.End))})
	table.Render()

	_, err := fmt.Fprintf(w, "CPU utilization %.1f%% (%d busy, %d idle ticks, %d selections)\n",
		100*m.Utilization(result.End), m.BusyTicks, m.IdleTicks, m.Selections)
	return err
}
