package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/solver-craft/internal/solver/craft"
)

// TraceOptions controls how a rotation is rendered
type TraceOptions struct {
	Verbose bool
	Lang    Lang
}

// RenderTrace prints a replayed rotation as a table followed by a summary
func RenderTrace(w io.Writer, trace *craft.Trace, opts TraceOptions) error {
	header := []string{"#", "Action", "CP", "Durability", "Quality"}
	if opts.Verbose {
		header = append(header, "IQ", "Manip", "Inno", "GS", "WN", "BT", "Obs")
	}

	table := tablewriter.NewTable(w, tablewriter.WithHeader(header))

	for i, step := range trace.Steps {
		row := []string{
			fmt.Sprintf("%d", i+1),
			ActionLabel(step.Action, opts.Lang),
			fmt.Sprintf("%d", step.State.CP),
			fmt.Sprintf("%d", step.State.Durability),
			fmt.Sprintf("%d (+%d)", step.Total, step.Reward),
		}
		if opts.Verbose {
			row = append(row, buffColumns(step.State.Buff)...)
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}

	if err := table.Render(); err != nil {
		return err
	}

	successColor := color.New(color.FgGreen, color.Bold)
	successColor.Fprintf(w, "✓ Quality %d in %d actions\n", trace.Total, len(trace.Steps))
	if opts.Verbose {
		fmt.Fprintf(w, "   Final: %s\n", trace.Final)
	} else {
		fmt.Fprintf(w, "   Final: CP %d, durability %d\n", trace.Final.CP, trace.Final.Durability)
	}
	return nil
}

func buffColumns(b craft.Buff) []string {
	return []string{
		fmt.Sprintf("%d", b.InnerQuiet),
		fmt.Sprintf("%d", b.Manipulation),
		fmt.Sprintf("%d", b.Innovation),
		fmt.Sprintf("%d", b.GreatStrides),
		fmt.Sprintf("%d", b.WasteNot),
		fmt.Sprintf("%d", b.BasicTouch),
		fmt.Sprintf("%d", b.Observe),
	}
}
