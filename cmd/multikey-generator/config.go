package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"multikey-generator/internal/config"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: "Print the configuration as YAML, with defaults filled in. " +
			"The output is a valid --config file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, err := root.loadConfig()
			if err != nil {
				return err
			}

			data, err := config.Marshal(file)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
