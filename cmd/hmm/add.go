package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		tags     string
		noPrompt bool
	)

	cmd := &cobra.Command{
		Use:     "add <thought...>",
		Aliases: []string{"+"},
		Short:   "Add a new thought",
		Long: `Add stores a new thought. All arguments are joined with spaces.
When --tags is not given and the terminal is interactive, hmm asks for tags.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.Join(args, " ")

			if !cmd.Flags().Changed("tags") && !noPrompt && a.prompter.Interactive() {
				answer, err := a.prompter.Prompt("tags (optional): ")
				if err != nil {
					return err
				}
				tags = answer
			}

			service, err := a.open(true)
			if err != nil {
				return fmt.Errorf("failed to open thoughts: %w", err)
			}

			thought, err := service.Add(cmd.Context(), message, tags)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added thought #%d\n", thought.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&tags, "tags", "t", "", "Tags for the thought")
	cmd.Flags().BoolVar(&noPrompt, "no-prompt", false, "Never ask for tags interactively")
	return cmd
}
