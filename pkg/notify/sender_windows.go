//go:build windows

package notify

import (
	"context"
	"fmt"
	"os/exec"
)

const toastScript = `[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
$t = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::ToastText02)
$x = $t.GetElementsByTagName("text")
$x.Item(0).AppendChild($t.CreateTextNode("%s")) | Out-Null
$x.Item(1).AppendChild($t.CreateTextNode("%s")) | Out-Null
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier("%s").Show([Windows.UI.Notifications.ToastNotification]::new($t))`

func command(ctx context.Context, app, summary, body string) (*exec.Cmd, error) {
	bin, err := lookPath("powershell")
	if err != nil {
		return nil, err
	}
	script := fmt.Sprintf(toastScript, quote(summary, "`"), quote(body, "`"), quote(app, "`"))
	return exec.CommandContext(ctx, bin, "-NoProfile", "-WindowStyle", "Hidden", "-Command", script), nil
}
