package core

import "context"

// Repository defines the contract for persisting the thought sequence.
// Adhering to this interface keeps the core independent of the storage format.
type Repository interface {
	// Load returns every stored thought in stored order.
	// A store that does not exist yet yields an empty sequence, not an error.
	Load(ctx context.Context) ([]Thought, error)

	// Save replaces the stored sequence. Either the whole write lands or the
	// previous content stays untouched.
	Save(ctx context.Context, thoughts []Thought) error
}

// Watchable defines an interface for repositories that can report external changes.
type Watchable interface {
	// Watch emits an event every time the backing store changes, until ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}
