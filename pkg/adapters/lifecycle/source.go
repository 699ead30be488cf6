// Package lifecycle exposes thoughts file changes as a lifecycle.Source.
package lifecycle

import (
	"context"
	"sync/atomic"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/hmm/pkg/core"
)

// Source forwards repository change events to lifecycle consumers.
type Source struct {
	events    <-chan core.Event
	out       chan lifecycle.Event
	forwarded atomic.Int64
}

// SourceState is reported through introspection.
type SourceState struct {
	Forwarded int64 `json:"forwarded"`
}

// NewSource wraps the channel returned by core.Service.Watch.
func NewSource(events <-chan core.Event) *Source {
	return &Source{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

// Events returns the forwarded stream. It is closed once the upstream channel
// closes or the context given to Start is done.
func (s *Source) Events() <-chan lifecycle.Event {
	return s.out
}

// Start launches the forwarding goroutine and returns immediately.
func (s *Source) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				select {
				case s.out <- e:
					s.forwarded.Add(1)
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}

// State implements introspection.Introspectable.
func (s *Source) State() any {
	return SourceState{Forwarded: s.forwarded.Load()}
}

// ComponentType implements introspection.Component.
func (s *Source) ComponentType() string {
	return "watch-source"
}

var _ lifecycle.Source = (*Source)(nil)
