//go:build linux

package notify

import (
	"context"
	"os/exec"
)

func command(ctx context.Context, app, summary, body string) (*exec.Cmd, error) {
	bin, err := lookPath("notify-send")
	if err != nil {
		return nil, err
	}
	return exec.CommandContext(ctx, bin, "--app-name", app, summary, body), nil
}
