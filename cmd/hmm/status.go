package main

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/hmm/pkg/adapters/fs"
	"github.com/aretw0/hmm/pkg/core"
)

func newStatusCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the state of the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := a.open(false)
			if err != nil {
				return fmt.Errorf("failed to open thoughts: %w", err)
			}

			// Loading populates the counters reported below.
			if _, err := service.List(cmd.Context(), ""); err != nil {
				return err
			}

			var intro introspection.Introspectable = service
			state := intro.State()

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(state)
			}

			out := cmd.OutOrStdout()
			s, ok := state.(core.ServiceState)
			if !ok {
				return fmt.Errorf("unexpected state %T", state)
			}
			fmt.Fprintf(out, "repository: %s\n", s.RepositoryType)
			if rs, ok := s.Repository.(fs.RepositoryState); ok {
				fmt.Fprintf(out, "file:       %s\n", rs.Path)
			}
			fmt.Fprintf(out, "thoughts:   %d\n", s.Thoughts)
			fmt.Fprintf(out, "last id:    %d\n", s.LastID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
