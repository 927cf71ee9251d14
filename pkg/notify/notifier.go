// Package notify summarizes upcoming entries as desktop notifications.
package notify

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/ironlist/pkg/entry"
	"tableflip.dev/ironlist/pkg/logging"
	"tableflip.dev/ironlist/pkg/store"
)

// retryDelay is used when the next trigger cannot be computed sensibly.
const retryDelay = time.Minute

// Notifier periodically re-reads the backing file and sends a summary of
// upcoming entries.
type Notifier struct {
	Persistence store.Persistence
	Sender      Sender
	Log         *log.Logger

	// At is the daily trigger time. Ignored when Interval is set.
	At Clock
	// Interval, when positive, sends every Interval instead of daily.
	Interval time.Duration
	// Once sends a single notification and returns.
	Once bool
	// Watch also sends when the backing file changes.
	Watch bool

	// Now and After are replaced in tests.
	Now   func() time.Time
	After func(d time.Duration) <-chan time.Time
}

func (n *Notifier) now() time.Time {
	if n.Now != nil {
		return n.Now()
	}
	return time.Now()
}

func (n *Notifier) after(d time.Duration) <-chan time.Time {
	if n.After != nil {
		return n.After(d)
	}
	return time.After(d)
}

func (n *Notifier) logger() *log.Logger {
	if n.Log == nil {
		n.Log = logging.Discard()
	}
	return n.Log
}

// Run sends notifications until ctx is cancelled. Cancellation is a clean
// exit and returns nil.
func (n *Notifier) Run(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not notify, no persistence")
	}
	if n.Sender == nil {
		return errors.New("can not notify, no sender")
	}

	var changes <-chan store.Event
	if n.Watch && !n.Once {
		ch, err := n.Persistence.Watch(ctx)
		if err != nil {
			n.logger().Warn("not watching for changes", "err", err)
		} else {
			changes = ch
		}
	}

	for {
		n.NotifyOnce(ctx)
		if n.Once {
			return nil
		}
		if !n.wait(ctx, &changes) {
			return nil
		}
	}
}

// wait blocks until the next trigger or a file change. It returns false when
// ctx is done.
func (n *Notifier) wait(ctx context.Context, changes *<-chan store.Event) bool {
	if ctx.Err() != nil {
		return false
	}
	d := n.Delay(n.now())
	n.logger().Debug("sleeping", "for", d.Round(time.Second))
	timer := n.after(d)
	for {
		select {
		case <-ctx.Done():
			return false
		case <-timer:
			return true
		case ev, ok := <-*changes:
			if !ok {
				*changes = nil
				continue
			}
			n.logger().Debug("backing file changed", "path", ev.Path)
			return true
		}
	}
}

// Delay is how long to wait after now before the next notification.
func (n *Notifier) Delay(now time.Time) time.Duration {
	if n.Interval > 0 {
		return n.Interval
	}
	d := NextTrigger(now, n.At).Sub(now)
	if d <= 0 {
		return retryDelay
	}
	return d
}

// NotifyOnce reads the backing file and sends one summary. Read and delivery
// failures are logged, never returned.
func (n *Notifier) NotifyOnce(ctx context.Context) {
	entries, err := n.Persistence.ListAll(ctx)
	if err != nil {
		n.logger().Error("reading entries for notification", "err", err)
		entries = []*entry.Entry{}
	}
	summary, body := Summarize(entries, n.now())
	if err := n.Sender.Send(ctx, summary, body); err != nil {
		n.logger().Warn("failed to send notification", "err", err)
		return
	}
	n.logger().Info("notification sent", "summary", summary)
}
