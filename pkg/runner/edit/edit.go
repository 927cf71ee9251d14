// Package edit provides the runner that replaces one entry.
package edit

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/ironlist/pkg/entry"
	"tableflip.dev/ironlist/pkg/store"
	"tableflip.dev/ironlist/pkg/visible"
)

// Edit replaces the entry shown as Index with Line.
type Edit struct {
	Index       int
	Line        string
	ShowAll     bool
	Out         io.Writer
	Persistence store.Persistence
}

// Do validates the replacement before touching the file, resolves Index
// against the visible entries and rewrites the file.
func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	replacement, err := entry.Parse(n.Line)
	if err != nil {
		return fmt.Errorf("replacement line: %w", err)
	}

	all, err := n.Persistence.ListAll(ctx)
	if err != nil {
		return err
	}
	i, err := visible.Resolve(all, n.ShowAll, n.Index)
	if err != nil {
		return err
	}
	all[i] = replacement

	if err := n.Persistence.Rewrite(all); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Replaced entry %d in %s\n", n.Index, n.Persistence.Path())
	return nil
}
