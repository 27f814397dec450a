package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// execute runs the command tree with args and returns the process exit code.
func execute(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)

		return 1
	}

	return 0
}

func newRootCmd() *cobra.Command {
	app := &app{}

	root := &cobra.Command{
		Use:           "curricula",
		Short:         "Curriculum graph analytics",
		Long:          "Analyse the requisite structure of curricula: complexity metrics, orderings, paths and reachability.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default ./curricula.yaml)")
	pf.StringP("format", "f", defaultFormat, "output format: text, json, yaml")
	pf.String("log-level", defaultLogLevel, "log level: debug, info, warn, error")
	pf.Int("max-paths", 0, "cap on source-sink paths enumerated for centrality (0 = no cap)")
	pf.IntP("parallel", "p", 0, "files analysed concurrently (0 = number of CPUs)")

	root.AddCommand(
		newAnalyzeCmd(app),
		newOrderCmd(app),
		newPathCmd(app),
		newReachCmd(app),
		newValidateCmd(app),
		newDiagramCmd(app),
		newConvertCmd(app),
	)

	return root
}
