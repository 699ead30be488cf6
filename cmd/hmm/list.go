package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var (
		format  string
		noColor bool
	)

	cmd := &cobra.Command{
		Use:     "ls [tag]",
		Aliases: []string{"list"},
		Short:   "List thoughts, optionally only those whose tags contain [tag]",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tag string
			if len(args) == 1 {
				tag = args[0]
			}

			r, err := newRenderer(format, noColor)
			if err != nil {
				return err
			}

			service, err := a.open(false)
			if err != nil {
				return fmt.Errorf("failed to open thoughts: %w", err)
			}

			listing, err := service.List(cmd.Context(), tag)
			if err != nil {
				return err
			}

			return r.Render(cmd.OutOrStdout(), cmd.ErrOrStderr(), listing)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json, yaml or toml")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	return cmd
}
