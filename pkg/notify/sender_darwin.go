//go:build darwin

package notify

import (
	"context"
	"fmt"
	"os/exec"
)

func command(ctx context.Context, app, summary, body string) (*exec.Cmd, error) {
	bin, err := lookPath("osascript")
	if err != nil {
		return nil, err
	}
	script := fmt.Sprintf(`display notification "%s" with title "%s" subtitle "%s"`,
		quote(body, `\`), quote(app, `\`), quote(summary, `\`))
	return exec.CommandContext(ctx, bin, "-e", script), nil
}
