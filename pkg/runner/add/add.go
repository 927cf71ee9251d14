// Package add provides the runner that appends a line to the backing file.
package add

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/ironlist/pkg/store"
)

// Add appends one entry.
type Add struct {
	Line        string
	Out         io.Writer
	Persistence store.Persistence
}

// Do validates the line and appends its canonical form. Nothing is written
// when the line is malformed.
func (n *Add) Do(_ context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	e, err := n.Persistence.Append(n.Line)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Appended normalized entry to %s\n", n.Persistence.Path())
	_, _ = color.New(color.Faint).Fprintf(out, "  %s\n", e)
	return nil
}
