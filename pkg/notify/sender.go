package notify

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Sender delivers a desktop notification.
type Sender interface {
	Send(ctx context.Context, summary, body string) error
}

// ErrUnsupported is returned by Desktop on platforms without a notifier.
var ErrUnsupported = errors.New("notifications are not supported on this platform")

// Desktop sends notifications through the platform's notification tool:
// notify-send on Linux, osascript on macOS and a PowerShell toast on Windows.
type Desktop struct {
	AppName string
}

func (d Desktop) Send(ctx context.Context, summary, body string) error {
	app := d.AppName
	if app == "" {
		app = "ironlist"
	}
	cmd, err := command(ctx, app, summary, body)
	if err != nil {
		return err
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", cmd.Path, err, strings.TrimSpace(string(out)))
	}
	return nil
}

var _ Sender = Desktop{}

// quote escapes s for use inside a double quoted AppleScript or PowerShell
// string.
func quote(s string, escape string) string {
	r := strings.NewReplacer(`"`, escape+`"`, escape, escape+escape)
	return r.Replace(s)
}

// lookPath resolves name or reports ErrUnsupported.
func lookPath(name string) (string, error) {
	p, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s not found", ErrUnsupported, name)
	}
	return p, nil
}
