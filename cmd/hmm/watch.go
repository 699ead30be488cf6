package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/hmm/pkg/adapters/lifecycle"
	"github.com/aretw0/hmm/pkg/core"
)

func newWatchCmd(a *app) *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "watch [tag]",
		Short: "List thoughts and refresh whenever the file changes",
		Long: `Watch prints the listing, then prints it again every time the thoughts
file is changed by another hmm invocation or an editor. Stop with Ctrl-C.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tag string
			if len(args) == 1 {
				tag = args[0]
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			service, err := a.open(false)
			if err != nil {
				return fmt.Errorf("failed to open thoughts: %w", err)
			}

			r := newTextRenderer(noColor)
			show := func(ctx context.Context) error {
				listing, err := service.List(ctx, tag)
				if err != nil {
					return err
				}
				return r.Render(cmd.OutOrStdout(), cmd.ErrOrStderr(), listing)
			}

			if err := show(ctx); err != nil {
				return err
			}

			events, err := service.Watch(ctx)
			if err != nil {
				return err
			}

			src := lifecycle.NewSource(events)
			if err := src.Start(ctx); err != nil {
				return err
			}

			for ev := range src.Events() {
				a.logger.Debug("change detected", "event", ev.String())
				at := time.Now()
				if e, ok := ev.(core.Event); ok {
					at = time.Unix(e.Timestamp, 0)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\n=== %s ===\n", at.Format("15:04:05"))
				// A half-edited file is reported, not fatal.
				if err := show(ctx); err != nil {
					a.logger.Error("failed to reload thoughts", "error", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	return cmd
}
