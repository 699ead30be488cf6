// Package core holds the thought record, the pure store transforms and the
// service that runs a single load, mutate, save cycle against a Repository.
package core

import "time"

// DateLayout is the calendar date format used for Thought timestamps.
const DateLayout = "2006-01-02"

// Thought is the central entity of the domain: one captured note.
// Fields are never modified once the thought is created.
type Thought struct {
	ID        uint64 `json:"id" yaml:"id" toml:"id"`
	Timestamp string `json:"timestamp" yaml:"timestamp" toml:"timestamp"`
	Message   string `json:"message" yaml:"message" toml:"message"`
	Tags      string `json:"tags" yaml:"tags" toml:"tags"`
}

// Clock returns the current time.
type Clock func() time.Time

// Stamp formats t as a Thought timestamp. Dates are always taken in UTC.
func Stamp(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// EventType represents the type of change observed on the backing store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change of the backing store.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return string(e.Type) + " " + e.Path
}
