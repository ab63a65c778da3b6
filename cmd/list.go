package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [scenes...]",
		Short: "List curves and selected keys",
		Long:  listLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(parsePaths(args)...)
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
