package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all thoughts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			service, err := a.open(true)
			if err != nil {
				return fmt.Errorf("failed to open thoughts: %w", err)
			}

			listing, err := service.List(cmd.Context(), "")
			if err != nil {
				return err
			}
			if listing.StoreEmpty() {
				fmt.Fprintln(out, "Nothing to clear.")
				return nil
			}

			if !yes {
				if !a.prompter.Interactive() {
					return fmt.Errorf("refusing to clear %d thoughts without confirmation (use --yes)", listing.Total)
				}
				ok, err := confirm(a.prompter, fmt.Sprintf("Remove all %d thoughts? [y/N] ", listing.Total))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}

			count, err := service.Clear(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Removed %d thoughts\n", count)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}
