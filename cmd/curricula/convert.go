package main

import (
	"github.com/katalvlaran/curricula/loader"
	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Rewrite a definition file in another format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := loader.ParseFormat(to)
			if err != nil {
				return err
			}
			def, err := loader.ReadFile(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("converting", "file", args[0], "to", format, "courses", len(def.Courses))

			return loader.Encode(cmd.OutOrStdout(), format, def)
		},
	}
	cmd.Flags().StringVar(&to, "to", string(loader.YAML), "target format: yaml, toml, json, hcl")

	return cmd
}
