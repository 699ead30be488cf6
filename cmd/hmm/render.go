package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/hmm/pkg/core"
)

const separator = "------------------------"

// renderer prints a listing. Hints for empty results go to info, never out,
// so structured output stays parseable.
type renderer interface {
	Render(out, info io.Writer, l core.Listing) error
}

// newRenderer returns the renderer registered for format.
func newRenderer(format string, noColor bool) (renderer, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return newTextRenderer(noColor), nil
	case "json":
		return jsonRenderer{}, nil
	case "yaml", "yml":
		return yamlRenderer{}, nil
	case "toml":
		return tomlRenderer{}, nil
	}
	return nil, fmt.Errorf("unknown format %q (want text, json, yaml or toml)", format)
}

// --- Text ---

type textRenderer struct {
	header  *color.Color
	rule    *color.Color
	message *color.Color
}

func newTextRenderer(noColor bool) *textRenderer {
	r := &textRenderer{
		header:  color.New(color.FgCyan, color.Bold),
		rule:    color.New(color.FgBlue),
		message: color.New(color.FgCyan),
	}
	if noColor {
		r.header.DisableColor()
		r.rule.DisableColor()
		r.message.DisableColor()
	}
	return r
}

func (r *textRenderer) Render(out, info io.Writer, l core.Listing) error {
	switch {
	case l.StoreEmpty():
		_, err := fmt.Fprintln(info, "No thoughts found! Add one with 'hmm add <thought>'")
		return err
	case l.NoMatches():
		_, err := fmt.Fprintf(info, "No thoughts tagged %q\n", l.Tag)
		return err
	}

	for i, t := range l.Thoughts {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if err := r.renderOne(out, t); err != nil {
			return err
		}
	}
	return nil
}

func (r *textRenderer) renderOne(out io.Writer, t core.Thought) error {
	head := fmt.Sprintf("#%d, %s", t.ID, t.Timestamp)
	if t.Tags != "" {
		head += ", " + t.Tags
	}
	if _, err := r.header.Fprintln(out, head); err != nil {
		return err
	}
	if _, err := r.rule.Fprintln(out, separator); err != nil {
		return err
	}
	_, err := r.message.Fprintln(out, t.Message)
	return err
}

// --- Structured ---

type jsonRenderer struct{}

func (jsonRenderer) Render(out, _ io.Writer, l core.Listing) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(l.Thoughts)
}

type yamlRenderer struct{}

func (yamlRenderer) Render(out, _ io.Writer, l core.Listing) error {
	data, err := yaml.Marshal(l.Thoughts)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

// tomlDocument wraps the listing: a TOML document must be a table.
type tomlDocument struct {
	Thoughts []core.Thought `toml:"thoughts"`
}

type tomlRenderer struct{}

func (tomlRenderer) Render(out, _ io.Writer, l core.Listing) error {
	data, err := toml.Marshal(tomlDocument{Thoughts: l.Thoughts})
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
