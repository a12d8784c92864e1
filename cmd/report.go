package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/rr-sim/rr-sim/sim/trace"
)

// printGantt renders the merged Gantt segments, one row per segment.
func printGantt(w io.Writer, summary *trace.TraceSummary) {
	_, _ = fmt.Fprintln(w, "Gantt chart")
	rows := make([][]string, 0, len(summary.Gantt))
	for _, seg := range summary.Gantt {
		label := "P" + strconv.FormatInt(seg.PID, 10)
		if seg.PID == trace.IdleLabel {
			label = "idle"
		}
		rows = append(rows, []string{
			label,
			strconv.FormatInt(seg.Start, 10),
			strconv.FormatInt(seg.End, 10),
			strconv.FormatInt(seg.End-seg.Start, 10),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Start", "End", "Ticks"})
	table.AppendBulk(rows)
	table.SetFooter([]string{
		fmt.Sprintf("Switches %d", summary.ContextSwitches),
		fmt.Sprintf("Preempted %d", summary.Preemptions),
		fmt.Sprintf("Idle %d", summary.IdleTicks),
		fmt.Sprintf("Util %.2f", summary.Utilization),
	})
	table.Render()
}
