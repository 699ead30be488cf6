package fs

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/aretw0/hmm/pkg/core"
)

// Header is the column layout of the thoughts file. A first line equal to it
// is skipped on load, and it is always written first on save.
var Header = []string{"id", "timestamp", "message", "tags"}

const (
	// minFields is the smallest usable row: id, timestamp and message.
	// A missing tags column reads as an empty string.
	minFields = 3
)

// Serializer reads and writes the thought sequence in a specific file format.
type Serializer interface {
	// Parse reads every thought from r, in order.
	Parse(r io.Reader) ([]core.Thought, error)
	// Serialize writes the whole sequence to w.
	Serialize(w io.Writer, thoughts []core.Thought) error
}

// CSVSerializer handles the comma separated thoughts file.
type CSVSerializer struct{}

// NewCSVSerializer creates a new CSV serializer.
func NewCSVSerializer() *CSVSerializer {
	return &CSVSerializer{}
}

// Parse decodes rows into thoughts. Parsing stops at the first malformed row
// with a *core.ParseError carrying its line number.
func (s *CSVSerializer) Parse(r io.Reader) ([]core.Thought, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	// Hand-written lines may carry a stray quote inside an unquoted field.
	reader.LazyQuotes = true

	thoughts := []core.Thought{}
	for first := true; ; first = false {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return thoughts, nil
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, &core.ParseError{Line: csvErr.Line, Reason: "invalid csv", Err: csvErr.Err}
			}
			return nil, fmt.Errorf("failed to read thoughts: %w: %w", core.ErrIO, err)
		}

		if first && slices.Equal(row, Header) {
			continue
		}

		line, _ := reader.FieldPos(0)
		t, err := parseRow(row, line)
		if err != nil {
			return nil, err
		}
		thoughts = append(thoughts, t)
	}
}

func parseRow(row []string, line int) (core.Thought, error) {
	if len(row) < minFields {
		return core.Thought{}, &core.ParseError{
			Line:   line,
			Reason: fmt.Sprintf("expected at least %d fields, got %d", minFields, len(row)),
		}
	}
	if len(row) > len(Header) {
		return core.Thought{}, &core.ParseError{
			Line:   line,
			Reason: fmt.Sprintf("expected at most %d fields, got %d", len(Header), len(row)),
		}
	}

	id, err := strconv.ParseUint(row[0], 10, 64)
	if err != nil {
		return core.Thought{}, &core.ParseError{Line: line, Reason: fmt.Sprintf("invalid id %q", row[0]), Err: err}
	}
	if id == 0 {
		return core.Thought{}, &core.ParseError{Line: line, Reason: "id must be positive"}
	}

	t := core.Thought{
		ID:        id,
		Timestamp: row[1],
		Message:   row[2],
	}
	if len(row) > 3 {
		t.Tags = row[3]
	}
	return t, nil
}

// Serialize writes the header followed by one row per thought.
func (s *CSVSerializer) Serialize(w io.Writer, thoughts []core.Thought) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, t := range thoughts {
		row := []string{strconv.FormatUint(t.ID, 10), t.Timestamp, t.Message, t.Tags}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
