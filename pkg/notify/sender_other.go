//go:build !linux && !darwin && !windows

package notify

import (
	"context"
	"os/exec"
)

func command(_ context.Context, _, _, _ string) (*exec.Cmd, error) {
	return nil, ErrUnsupported
}
