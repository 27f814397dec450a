package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOrderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "order FILE",
		Short: "Print the courses in requisite order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load(args[0])
			if err != nil {
				return err
			}
			order, err := c.TopologicalSort()
			if err != nil {
				return err
			}
			for _, id := range order {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}

			return nil
		},
	}
}
