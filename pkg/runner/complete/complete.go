// Package complete provides the runner logic for marking entries complete.
package complete

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/ironlist/pkg/store"
	"tableflip.dev/ironlist/pkg/visible"
)

// Complete marks an entry as completed.
type Complete struct {
	Index       int
	ShowAll     bool
	Out         io.Writer
	Persistence store.Persistence
}

// Do tags the entry shown as Index complete and rewrites the file. Completing
// a completed entry leaves its tags unchanged.
func (n *Complete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not complete, no persistence")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	all, err := n.Persistence.ListAll(ctx)
	if err != nil {
		return err
	}
	i, err := visible.Resolve(all, n.ShowAll, n.Index)
	if err != nil {
		return err
	}
	all[i].Complete()

	if err := n.Persistence.Rewrite(all); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Marked entry %d as complete in %s\n", n.Index, n.Persistence.Path())
	return nil
}
