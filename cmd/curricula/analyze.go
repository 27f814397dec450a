package main

import (
	"fmt"

	"github.com/katalvlaran/curricula/report"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze FILE...",
		Short: "Compute complexity metrics for one or more curricula",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(a.cfg.Format)
			if err != nil {
				return err
			}
			if format == report.Mermaid {
				return fmt.Errorf("%w: use the diagram command for mermaid", report.ErrUnknownFormat)
			}

			// 1. Analyse concurrently, one curriculum per goroutine
			results := make([]*report.Analysis, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(a.cfg.Parallel)
			for i, path := range args {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					c, err := a.load(path)
					if err != nil {
						return err
					}
					res, err := report.Analyze(c)
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					results[i] = res

					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			// 2. Render in argument order
			out := cmd.OutOrStdout()
			for i, res := range results {
				if i > 0 && format == report.Text {
					fmt.Fprintln(out)
				}
				if err := report.Write(out, format, res); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
