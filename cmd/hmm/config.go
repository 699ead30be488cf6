package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/hmm"
)

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show where hmm reads its settings and stores thoughts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := hmm.ResolveConfig(a.dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config dir: %s\n", cfg.ConfigDir)
			fmt.Fprintf(out, "env file:   %s\n", cfg.EnvFile)
			fmt.Fprintf(out, "output dir: %s (%s)\n", cfg.OutputDir, cfg.Source)
			fmt.Fprintf(out, "data file:  %s\n", cfg.DataFile)
			return nil
		},
	}
}
