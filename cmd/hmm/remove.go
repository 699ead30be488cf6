package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Remove a thought by id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			service, err := a.open(true)
			if err != nil {
				return fmt.Errorf("failed to open thoughts: %w", err)
			}

			removed, err := service.Remove(cmd.Context(), id)
			if err != nil {
				return err
			}

			if removed {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed thought #%s\n", id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "No thought with id %s\n", id)
			}
			return nil
		},
	}
}
