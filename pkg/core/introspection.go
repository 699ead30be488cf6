package core

import (
	"time"

	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	RepositoryType string     `json:"repository_type"`
	Repository     any        `json:"repository,omitempty"`
	Thoughts       int        `json:"thoughts"`
	LastID         uint64     `json:"last_id"`
	LoadedAt       *time.Time `json:"loaded_at,omitempty"`
}

// State implements introspection.Introspectable.
// Counters reflect the most recent load or save performed by this service.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := ServiceState{
		RepositoryType: "unknown",
		Thoughts:       s.lastLoaded,
		LastID:         s.highWater,
		LoadedAt:       s.loadedAt,
	}
	if s.repo != nil {
		state.RepositoryType = "repository"
		if comp, ok := s.repo.(introspection.Component); ok {
			state.RepositoryType = comp.ComponentType()
		}
		if intro, ok := s.repo.(introspection.Introspectable); ok {
			state.Repository = intro.State()
		}
	}
	return state
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
