package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check curricula for requisite cycles and dangling requisites",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// every file is checked; failures are reported together
			errs := make([]error, len(args))
			var g errgroup.Group
			g.SetLimit(a.cfg.Parallel)
			for i, path := range args {
				g.Go(func() error {
					c, err := a.load(path)
					if err == nil {
						err = c.Validate()
					}
					if err != nil {
						errs[i] = fmt.Errorf("%s: %w", path, err)
					}

					return nil
				})
			}
			_ = g.Wait()

			out := cmd.OutOrStdout()
			failed := 0
			for i, path := range args {
				if errs[i] == nil {
					fmt.Fprintf(out, "%s: ok\n", path)
					continue
				}
				failed++
				fmt.Fprintf(out, "%v\n", errs[i])
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d curricula invalid", failed, len(args))
			}

			return nil
		},
	}
}
