package main

import (
	"github.com/katalvlaran/curricula/report"
	"github.com/spf13/cobra"
)

func newDiagramCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diagram FILE",
		Short: "Write the requisite graph as a Mermaid flowchart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load(args[0])
			if err != nil {
				return err
			}

			return report.WriteMermaid(cmd.OutOrStdout(), c)
		},
	}
}
