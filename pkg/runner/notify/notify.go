// Package notify provides the runner behind the notify command: it either
// runs the notifier loop or manages the scheduled job that runs it.
package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"

	"tableflip.dev/ironlist/pkg/notify"
	"tableflip.dev/ironlist/pkg/schedule"
	"tableflip.dev/ironlist/pkg/store"
	"tableflip.dev/ironlist/pkg/timeutil"
)

// Notify runs or schedules notifications of upcoming entries.
type Notify struct {
	At       notify.Clock
	Interval time.Duration
	Once     bool
	Watch    bool

	Install   bool
	Uninstall bool
	// Executable and File describe the scheduled invocation on Install.
	Executable string
	File       string

	Installer   schedule.Installer
	Sender      notify.Sender
	Log         *log.Logger
	Out         io.Writer
	Persistence store.Persistence
}

// Do blocks in the notifier loop unless Install or Uninstall is set.
func (n *Notify) Do(ctx context.Context) error {
	if n.Install && n.Uninstall {
		return errors.New("--install and --uninstall are mutually exclusive")
	}
	if n.Out == nil {
		n.Out = color.Output
	}
	if n.Install || n.Uninstall {
		return n.schedule(ctx)
	}

	if n.Persistence == nil {
		return errors.New("can not notify, no persistence")
	}
	sender := n.Sender
	if sender == nil {
		sender = &notify.Desktop{AppName: "IronList"}
	}
	nt := &notify.Notifier{
		Persistence: n.Persistence,
		Sender:      sender,
		Log:         n.Log,
		At:          n.At,
		Interval:    n.Interval,
		Once:        n.Once,
		Watch:       n.Watch,
	}
	if n.Log != nil && !n.Once {
		if n.Interval > 0 {
			n.Log.Info("notifying", "every", timeutil.FormatInterval(n.Interval), "file", n.Persistence.Path())
		} else {
			n.Log.Info("notifying", "daily at", n.At.String(), "file", n.Persistence.Path())
		}
	}
	return nt.Run(ctx)
}

func (n *Notify) schedule(ctx context.Context) error {
	installer := n.Installer
	if installer == nil {
		var err error
		if installer, err = schedule.New(); err != nil {
			return err
		}
	}

	if n.Uninstall {
		if err := installer.Uninstall(ctx); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(n.Out, "Removed scheduled notification job (if present).")
		return nil
	}

	exe := n.Executable
	if exe == "" {
		var err error
		if exe, err = schedule.Executable(); err != nil {
			return err
		}
	}
	job := schedule.Job{
		Executable: exe,
		At:         n.At,
		Interval:   n.Interval,
		File:       n.File,
	}
	if err := installer.Install(ctx, job); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(n.Out, "Installed scheduled notification job.")
	_, _ = color.New(color.Faint).Fprintf(n.Out, "  %s\n", installer.Describe())
	return nil
}
