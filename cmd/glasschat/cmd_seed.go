package main

import (
	"github.com/spf13/cobra"
)

// seedCmd prints the seed as YAML, a starting point for a custom
// seed_path.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Print the conversation seed as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := loadSeed(appConfig)
		if err != nil {
			return err
		}
		out, err := data.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}
