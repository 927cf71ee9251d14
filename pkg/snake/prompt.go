// Package snake asks the user for the few answers ironlist cannot get from
// flags or config.
package snake

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
)

// ErrNotInteractive is returned when a prompt would need a terminal.
var ErrNotInteractive = errors.New("not running in a terminal")

var templates = &promptui.PromptTemplates{
	Prompt:  "{{ . }} : ",
	Valid:   "{{ . | green }} : ",
	Invalid: "{{ . | red }} : ",
	Success: "{{ . | bold }} : ",
}

// Prompter reads answers from In and draws prompts on Out.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

// Interactive reports whether both ends of the prompter are terminals.
func (p *Prompter) Interactive() bool {
	return isTerminal(p.In) && isTerminal(p.Out)
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// String asks for a non-empty line of text.
func (p *Prompter) String(label string) (string, error) {
	if !p.Interactive() {
		return "", ErrNotInteractive
	}
	prompt := promptui.Prompt{
		Label:     label,
		Templates: templates,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("empty")
			}
			return nil
		},
		Stdin:  io.NopCloser(p.In),
		Stdout: nopCloser{p.Out},
	}
	result, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return strings.TrimSpace(result), nil
}

// Confirm asks a yes/no question. An empty answer is no.
func (p *Prompter) Confirm(label string) (bool, error) {
	if !p.Interactive() {
		return false, ErrNotInteractive
	}
	prompt := promptui.Prompt{
		Label:     label + " y/[n]",
		Templates: templates,
		Validate: func(input string) error {
			if input == "" {
				return nil
			}
			_, err := ParseBool(input)
			return err
		},
		Stdin:  io.NopCloser(p.In),
		Stdout: nopCloser{p.Out},
	}
	result, err := prompt.Run()
	if err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	if result == "" {
		return false, nil
	}
	return ParseBool(result)
}

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "no", "NO", "No":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
