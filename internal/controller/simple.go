package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/scalist/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writers.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayScenes prints a per-curve table for every scene.
func (s *SimpleUI) DisplayScenes(infos []SceneInfo) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Scene", "Curve", "Keys", "Selected", "Range"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	curveCount := 0
	selectedTotal := 0

	for _, info := range infos {
		for _, curve := range info.Curves {
			table.Append([]string{
				string(info.Path),
				curve.Name,
				fmt.Sprintf("%d", curve.Keys),
				fmt.Sprintf("%d", curve.Selected),
				fmt.Sprintf("%g..%g", curve.First, curve.Last),
			})

			curveCount++
			selectedTotal += curve.Selected
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Curves %d", curveCount),
		"",
		"",
		fmt.Sprintf("%d", selectedTotal),
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayCommits prints the moves an operation would write, in commit order.
func (s *SimpleUI) DisplayCommits(results []ScaleResult) error {
	for _, res := range results {
		if res.Rejected {
			continue
		}

		column := "New Value"
		if res.Commits.Axis == m.AxisTime {
			column = "New Frame"
		}

		var tableBuffer bytes.Buffer

		table := tablewriter.NewWriter(&tableBuffer)
		table.SetHeader([]string{"Curve", "Frame", column})
		table.SetBorder(false)
		table.SetCenterSeparator("")

		for _, move := range res.Commits.Moves {
			table.Append([]string{
				move.Curve,
				fmt.Sprintf("%g", move.Time),
				fmt.Sprintf("%g", move.New),
			})
		}

		table.Render()
		s.printf("%s: %s %s x%g (%s), %d move(s)\n%s\n",
			res.Path, res.Request.Axis(), res.Request.Strategy, res.Request.Factor,
			res.Request.Grouping, len(res.Commits.Moves), tableBuffer.String())
	}

	return nil
}

// DisplayResults prints a one line summary per scaled scene.
func (s *SimpleUI) DisplayResults(results []ScaleResult) error {
	for _, res := range results {
		if res.Rejected {
			continue
		}

		s.printf("%s: scaled %d key(s) on %d curve(s) in %s by %g (%s pivot, %s)\n",
			res.Path, len(res.Commits.Moves), res.Curves, res.Request.Axis(),
			res.Request.Factor, res.Request.Strategy, res.Request.Grouping)
	}

	return nil
}

// DisplayWarning prints a user-facing warning to stderr.
func (s *SimpleUI) DisplayWarning(msg string) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "warning: %s\n", msg)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
