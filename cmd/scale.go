package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/scalist/internal/config"
	"github.com/mouse-blink/scalist/internal/domain"
	m "github.com/mouse-blink/scalist/internal/model"
)

var scalePivotFlag string
var scaleAmountFlag float64
var scaleMultiFlag bool
var scaleDryRunFlag bool
var scaleParallelFlag int

// scaleCmd represents the scale command.
var scaleCmd = newScaleCmd()

func newScaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale [scenes...]",
		Short: "Scale selected keyframes around a pivot",
		Long:  scaleLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := m.ParsePivotStrategy(scalePivotFlag)
			if err != nil {
				return err
			}

			amount := scaleAmountFlag
			if !cmd.Flags().Changed("amount") {
				amount = cfg.Scale.DefaultAmount
			}

			if amount < cfg.Scale.FieldMin || amount > cfg.Scale.FieldMax {
				return fmt.Errorf("amount %g is outside %g..%g",
					amount, cfg.Scale.FieldMin, cfg.Scale.FieldMax)
			}

			grouping := m.GroupUnified
			if scaleMultiFlag {
				grouping = m.GroupPerCurve
			}

			return workflow.Scale(domain.ScaleArgs{
				Paths: parsePaths(args),
				Request: m.ScaleRequest{
					Strategy: strategy,
					Factor:   amount,
					Grouping: grouping,
				},
				DryRun:  scaleDryRunFlag,
				Threads: scaleParallelFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&scalePivotFlag, "pivot", "p", "middle-value", "pivot strategy (see long help for the full list)")
	cmd.Flags().Float64VarP(&scaleAmountFlag, "amount", "a",
		config.Defaults().Scale.DefaultAmount, "scale factor, 1.0 is a no-op")
	cmd.Flags().BoolVarP(&scaleMultiFlag, "multi", "m", false, "scale each curve from its own pivot")
	cmd.Flags().BoolVarP(&scaleDryRunFlag, "dry-run", "n", false, "print the moves without writing the scene")
	cmd.Flags().IntVar(&scaleParallelFlag, "parallel", 1, "number of scene files scaled concurrently")

	return cmd
}

func init() {
	rootCmd.AddCommand(scaleCmd)
}
