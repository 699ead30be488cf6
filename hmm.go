package hmm

import (
	"log/slog"

	"github.com/aretw0/hmm/internal/platform"
	"github.com/aretw0/hmm/pkg/core"
)

// --- Types ---

// Thought is a public alias for the stored record.
type Thought = core.Thought

// Listing is a public alias for a filtered view of the store.
type Listing = core.Listing

// Config is the resolved on-disk layout.
type Config = platform.Config

// --- Configuration ---

// Option defines a functional option for configuring hmm.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithClock injects the time source used to stamp new thoughts.
func WithClock(clock core.Clock) Option {
	return platform.WithClock(clock)
}

// WithFileName overrides the thoughts file name (default "thoughts.csv").
func WithFileName(name string) Option {
	return platform.WithFileName(name)
}

// WithAutoInit creates the output directory if it is missing.
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithReadOnly makes every save fail with core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithWatcherErrorHandler registers a callback for watcher failures.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a new hmm Service over the thoughts file in dir.
func New(dir string, opts ...Option) (*core.Service, error) {
	return platform.New(dir, opts...)
}

// Init builds the storage adapter for dir without the service layer.
func Init(dir string, opts ...Option) (core.Repository, error) {
	return platform.Init(dir, opts...)
}

// ResolveConfig locates the thoughts file from flags, environment and the
// settings file in the user config directory.
func ResolveConfig(dirOverride string) (Config, error) {
	return platform.ResolveConfig(dirOverride)
}
