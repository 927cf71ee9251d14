// Package defaults provides the runner behind --set-default and
// --show-default.
package defaults

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"

	"tableflip.dev/ironlist/pkg/defaults"
)

// Clear is the Set value that removes the saved default.
const Clear = "-"

// Defaults shows, saves or clears the saved default backing file.
type Defaults struct {
	Store *defaults.Store
	// Set is the path to save, or Clear.
	Set  string
	Show bool
	// Confirm asks whether a missing Set path should be created. A nil
	// Confirm declines.
	Confirm func(path string) (bool, error)
	Out     io.Writer
}

func (n *Defaults) Do(_ context.Context) error {
	if n.Store == nil {
		return errors.New("can not manage defaults, no store")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if n.Show {
		p, ok, err := n.Store.Load()
		if err != nil {
			return err
		}
		if ok {
			_, _ = fmt.Fprintf(out, "Saved default: %s\n", p)
		} else {
			_, _ = fmt.Fprintln(out, "No saved default")
		}
		return nil
	}

	switch n.Set {
	case "":
		return errors.New("no default path given")
	case Clear:
		if err := n.Store.Clear(); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, "Cleared saved default")
		return nil
	}

	p, err := homedir.Expand(n.Set)
	if err != nil {
		return err
	}
	if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
		_, _ = fmt.Fprintf(out, "Provided path does not exist: %s\n", p)
		create := false
		if n.Confirm != nil {
			if create, err = n.Confirm(p); err != nil {
				return err
			}
		}
		if !create {
			_, _ = fmt.Fprintln(out, "Aborted; not saving default.")
			return nil
		}
		if err := touch(p); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "Created file: %s\n", p)
	} else if err != nil {
		return err
	}

	if err := n.Store.Save(p); err != nil {
		return err
	}
	saved, _, err := n.Store.Load()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Saved default path to config: %s\n", saved)
	return nil
}

func touch(p string) error {
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}
