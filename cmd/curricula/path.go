package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newPathCmd(a *app) *cobra.Command {
	var (
		from, to string
		limit    int
		shortest bool
	)

	cmd := &cobra.Command{
		Use:   "path FILE",
		Short: "Print the longest requisite path, or every path between two courses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if from == "" && to == "" {
				lp, err := c.LongestPath()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s (%s)\n", strings.Join(lp.Courses, " -> "),
					strconv.FormatFloat(lp.Length, 'f', -1, 64))

				return nil
			}
			if from == "" || to == "" {
				return errors.New("--from and --to must be given together")
			}

			if shortest {
				chain, err := c.ShortestChain(from, to)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, strings.Join(chain, " -> "))

				return nil
			}

			paths, err := c.AllPaths(from, to)
			if err != nil {
				return err
			}
			n := 0
			for p := range paths {
				fmt.Fprintln(out, strings.Join(p, " -> "))
				n++
				if limit > 0 && n >= limit {
					break
				}
			}
			a.logger.Debug("paths listed", "from", from, "to", to, "count", n)

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first course id")
	cmd.Flags().StringVar(&to, "to", "", "last course id")
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many paths (0 = all)")
	cmd.Flags().BoolVar(&shortest, "shortest", false, "print only the chain with the fewest requisites")

	return cmd
}
