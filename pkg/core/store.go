package core

import (
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
)

// MaxID returns the highest id in the sequence, or 0 when it is empty.
func MaxID(thoughts []Thought) uint64 {
	var high uint64
	for _, t := range thoughts {
		high = max(high, t.ID)
	}
	return high
}

// NextID returns the identifier for the next thought: one past the highest id
// in the sequence or floor, whichever is larger. Passing the highest id ever
// issued as floor keeps ids of removed thoughts from coming back.
func NextID(thoughts []Thought, floor uint64) (uint64, error) {
	high := max(MaxID(thoughts), floor)
	if high == math.MaxUint64 {
		return 0, ErrIDExhausted
	}
	return high + 1, nil
}

// Append creates a new thought stamped with now and returns a new sequence
// ending with it, along with the created thought. The input slice is not modified.
func Append(thoughts []Thought, floor uint64, message, tags string, now time.Time) ([]Thought, Thought, error) {
	id, err := NextID(thoughts, floor)
	if err != nil {
		return nil, Thought{}, err
	}
	t := Thought{
		ID:        id,
		Timestamp: Stamp(now),
		Message:   strings.TrimSpace(message),
		Tags:      strings.TrimSpace(tags),
	}

	out := make([]Thought, 0, len(thoughts)+1)
	out = append(out, thoughts...)
	return append(out, t), t, nil
}

// Listing is the result of filtering a sequence.
type Listing struct {
	// Thoughts are the matching records, in stored order.
	Thoughts []Thought
	// Tag is the filter that produced the listing ("" means none).
	Tag string
	// Total is the size of the unfiltered sequence.
	Total int
}

// StoreEmpty reports whether there was nothing stored at all.
func (l Listing) StoreEmpty() bool {
	return l.Total == 0
}

// NoMatches reports whether the store had thoughts but the filter selected none.
func (l Listing) NoMatches() bool {
	return l.Total > 0 && len(l.Thoughts) == 0
}

// Filter selects the thoughts whose tags contain tag as a case-sensitive
// substring. An empty tag selects everything.
func Filter(thoughts []Thought, tag string) Listing {
	l := Listing{Tag: tag, Total: len(thoughts)}
	if tag == "" {
		l.Thoughts = slices.Clone(thoughts)
		if l.Thoughts == nil {
			l.Thoughts = []Thought{}
		}
		return l
	}

	l.Thoughts = []Thought{}
	for _, t := range thoughts {
		if strings.Contains(t.Tags, tag) {
			l.Thoughts = append(l.Thoughts, t)
		}
	}
	return l
}

// Remove drops the first thought whose id, in decimal form, equals id.
// When nothing matches, the sequence is returned as is and removed is false.
func Remove(thoughts []Thought, id string) (out []Thought, removed bool) {
	for i, t := range thoughts {
		if strconv.FormatUint(t.ID, 10) != id {
			continue
		}
		out = make([]Thought, 0, len(thoughts)-1)
		out = append(out, thoughts[:i]...)
		return append(out, thoughts[i+1:]...), true
	}
	return thoughts, false
}

// Clear discards every thought.
func Clear(thoughts []Thought) []Thought {
	return []Thought{}
}
