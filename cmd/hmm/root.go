package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/m-mizutani/clog"
	"github.com/spf13/cobra"

	"github.com/aretw0/hmm"
	"github.com/aretw0/hmm/pkg/core"
)

// app carries the state shared by every command of one invocation.
type app struct {
	dir      string
	verbose  bool
	logger   *slog.Logger
	clock    core.Clock
	prompter prompter
}

func newApp() *app {
	return &app{
		logger:   slog.Default(),
		prompter: newTerminalPrompter(),
	}
}

// open resolves the thoughts file and wires a service on top of it.
// Read-only services never create directories and refuse to save.
func (a *app) open(write bool) (*core.Service, error) {
	cfg, err := hmm.ResolveConfig(a.dir)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("using thoughts file", "path", cfg.DataFile, "source", cfg.Source)

	return hmm.New(cfg.OutputDir,
		hmm.WithLogger(a.logger),
		hmm.WithClock(a.clock),
		hmm.WithReadOnly(!write),
		hmm.WithAutoInit(write),
	)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "hmm",
		Short: "Capture your thoughts in the terminal",
		Long: `hmm keeps short dated thoughts with optional tags in a plain CSV file.
The file lives in HMM_OUTPUT_DIR, configured in the .env file of the hmm-cli
config directory, and defaults to the current directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}

			handler := clog.New(
				clog.WithWriter(cmd.ErrOrStderr()),
				clog.WithLevel(level),
				clog.WithTimeFmt("15:04:05"),
				clog.WithSource(false),
			)
			a.logger = slog.New(handler)
			slog.SetDefault(a.logger)
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVarP(&a.dir, "dir", "d", "", "Directory holding the thoughts file (overrides HMM_OUTPUT_DIR)")

	root.AddCommand(
		newAddCmd(a),
		newListCmd(a),
		newRemoveCmd(a),
		newClearCmd(a),
		newWatchCmd(a),
		newStatusCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute builds the command tree and runs it.
// This is called by main.main().
func Execute() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
