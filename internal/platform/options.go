package platform

import (
	"log/slog"

	"github.com/aretw0/hmm/pkg/core"
)

// options holds the internal configuration for the hmm service.
type options struct {
	repository   core.Repository
	logger       *slog.Logger
	clock        core.Clock
	fileName     string
	autoInit     bool
	readOnly     bool
	errorHandler func(error)
}

// Option defines a functional option for configuring hmm.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		repository: nil,
		logger:     nil,
		clock:      nil,
		fileName:   "",
		autoInit:   false,
		readOnly:   false,
	}
}

// WithLogger sets the logger for the service and the storage adapter.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock injects the time source used to stamp new thoughts.
// Defaults to time.Now.
func WithClock(clock core.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithFileName overrides the name of the thoughts file inside the output directory.
func WithFileName(name string) Option {
	return func(o *options) {
		o.fileName = name
	}
}

// WithAutoInit creates the output directory when it does not exist.
// Without it, saving into a missing directory fails with core.ErrIO.
func WithAutoInit(auto bool) Option {
	return func(o *options) {
		o.autoInit = auto
	}
}

// WithReadOnly enables read-only mode: saves return core.ErrReadOnly and
// no directory is ever created.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.readOnly = enabled
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. a mock).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithWatcherErrorHandler registers a callback for errors raised while watching
// the thoughts file, which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}
