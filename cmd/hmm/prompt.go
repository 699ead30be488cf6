package main

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

var errAborted = errors.New("aborted")

// prompter asks the user for optional input.
type prompter interface {
	// Interactive reports whether someone can answer a prompt.
	Interactive() bool
	// Prompt shows label and returns the trimmed answer.
	Prompt(label string) (string, error)
}

type terminalPrompter struct {
	in  *os.File
	out io.Writer
}

func newTerminalPrompter() *terminalPrompter {
	return &terminalPrompter{in: os.Stdin, out: os.Stderr}
}

func (p *terminalPrompter) Interactive() bool {
	return term.IsTerminal(int(p.in.Fd()))
}

func (p *terminalPrompter) Prompt(label string) (string, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:       label,
		Stdin:        p.in,
		Stdout:       p.out,
		HistoryLimit: -1,
	})
	if err != nil {
		return "", err
	}
	defer rl.Close()

	line, err := rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt):
		return "", errAborted
	case errors.Is(err, io.EOF):
		return "", nil
	case err != nil:
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question. Anything but y/yes means no.
func confirm(p prompter, question string) (bool, error) {
	answer, err := p.Prompt(question)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
