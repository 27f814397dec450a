package main

import (
	"fmt"

	"github.com/katalvlaran/curricula/curriculum"
	"github.com/spf13/cobra"
)

func newReachCmd(a *app) *cobra.Command {
	var (
		direction string
		within    []string
		depth     int
	)

	cmd := &cobra.Command{
		Use:   "reach FILE COURSE...",
		Short: "List the courses a course gates (from) or requires (to)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load(args[0])
			if err != nil {
				return err
			}
			ids := args[1:]
			opts := []curriculum.ReachOption{curriculum.WithDepth(depth)}

			var out []string
			switch {
			case len(ids) > 1 && direction == "to" && within == nil && depth == 0:
				out, err = c.Reach(ids)
			case len(ids) > 1:
				return fmt.Errorf("several courses need --direction to and no --within or --depth")
			case direction == "from" && within != nil:
				out, err = c.ReachableFromSubgraph(ids[0], within, opts...)
			case direction == "from":
				out, err = c.ReachableFrom(ids[0], opts...)
			case direction == "to" && within != nil:
				out, err = c.ReachableToSubgraph(ids[0], within, opts...)
			case direction == "to":
				out, err = c.ReachableTo(ids[0], opts...)
			default:
				return fmt.Errorf("direction %q: want from or to", direction)
			}
			if err != nil {
				return err
			}
			for _, id := range out {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&direction, "direction", "d", "from", "from: courses gated; to: courses required")
	cmd.Flags().StringSliceVar(&within, "within", nil, "restrict the search to these course ids")
	cmd.Flags().IntVar(&depth, "depth", 0, "stop this many requisite edges away (0 = no limit)")

	return cmd
}
