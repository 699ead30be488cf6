package fs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aretw0/hmm/pkg/core"
)

// DefaultFileName is the name of the thoughts file inside the output directory.
const DefaultFileName = "thoughts.csv"

// Repository implements core.Repository on top of a single CSV file.
type Repository struct {
	Path       string
	config     Config
	serializer Serializer

	mu            sync.RWMutex
	watcherActive bool
	lastLoad      *time.Time
	lastSave      *time.Time
	records       int
}

// Config holds the configuration for the filesystem repository.
type Config struct {
	Dir      string // Output directory holding the thoughts file.
	FileName string // Defaults to DefaultFileName.
	ReadOnly bool   // Save returns core.ErrReadOnly.
	Logger   *slog.Logger
	// ErrorHandler receives watcher failures that would otherwise only be logged.
	ErrorHandler func(error)
}

// NewRepository creates a new filesystem-backed repository.
func NewRepository(config Config) *Repository {
	if config.FileName == "" {
		config.FileName = DefaultFileName
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Repository{
		Path:       filepath.Join(config.Dir, config.FileName),
		config:     config,
		serializer: NewCSVSerializer(),
	}
}

// Initialize ensures the output directory exists.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.ReadOnly {
		return nil
	}
	if err := os.MkdirAll(r.config.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w: %w", core.ErrIO, err)
	}
	return nil
}

// Load reads every thought from the file.
// A missing or empty file is an empty store.
func (r *Repository) Load(ctx context.Context) ([]core.Thought, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(r.Path)
	if os.IsNotExist(err) {
		r.config.Logger.Debug("thoughts file not found, starting empty", "path", r.Path)
		r.recordLoad(0)
		return []core.Thought{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w: %w", r.Path, core.ErrIO, err)
	}
	defer f.Close()

	thoughts, err := r.serializer.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", r.Path, err)
	}

	r.config.Logger.Debug("thoughts loaded", "path", r.Path, "count", len(thoughts))
	r.recordLoad(len(thoughts))
	return thoughts, nil
}

// Save rewrites the whole file atomically.
// The parent directory must exist; see Initialize.
func (r *Repository) Save(ctx context.Context, thoughts []core.Thought) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	err := replaceFile(r.Path, func(w io.Writer) error {
		return r.serializer.Serialize(w, thoughts)
	})
	if err != nil {
		return err
	}

	r.config.Logger.Debug("thoughts written", "path", r.Path, "count", len(thoughts))
	r.recordSave(len(thoughts))
	return nil
}

func (r *Repository) recordLoad(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastLoad = &now
	r.records = n
}

func (r *Repository) recordSave(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	r.lastSave = &now
	r.records = n
}

var _ core.Repository = (*Repository)(nil)
var _ core.Watchable = (*Repository)(nil)
