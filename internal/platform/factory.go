package platform

import (
	"context"

	"github.com/aretw0/hmm/pkg/adapters/fs"
	"github.com/aretw0/hmm/pkg/core"
)

// New wires a core.Service on top of the thoughts file in dir.
//
//	svc, err := hmm.New("./notes", hmm.WithAutoInit(true))
func New(dir string, opts ...Option) (*core.Service, error) {
	repo, err := Init(dir, opts...)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return core.NewService(repo, o.clock, o.logger), nil
}

// Init builds the storage adapter for dir. With WithAutoInit the output
// directory is created up front.
func Init(dir string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.repository != nil {
		return o.repository, nil
	}

	if dir == "" {
		dir = "."
	}

	repo := fs.NewRepository(fs.Config{
		Dir:          dir,
		FileName:     o.fileName,
		ReadOnly:     o.readOnly,
		Logger:       o.logger,
		ErrorHandler: o.errorHandler,
	})

	if o.autoInit {
		if err := repo.Initialize(context.Background()); err != nil {
			return nil, err
		}
	}

	return repo, nil
}
