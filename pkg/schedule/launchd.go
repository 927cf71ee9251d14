package schedule

import (
	"context"
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

const launchdLabel = "com.ironlist.notify"

var plistTemplate = template.Must(template.New("plist").Funcs(template.FuncMap{
	"xml": xmlEscape,
}).Parse(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple Computer//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
  <key>Label</key>
  <string>{{.Label}}</string>
  <key>ProgramArguments</key>
  <array>
{{- range .Arguments}}
    <string>{{xml .}}</string>
{{- end}}
  </array>
{{- if .Seconds}}
  <key>StartInterval</key>
  <integer>{{.Seconds}}</integer>
{{- else}}
  <key>StartCalendarInterval</key>
  <dict>
    <key>Hour</key>
    <integer>{{.Hour}}</integer>
    <key>Minute</key>
    <integer>{{.Minute}}</integer>
  </dict>
{{- end}}
</dict>
</plist>
`))

func launchdDir(home string) string {
	return filepath.Join(home, "Library", "LaunchAgents")
}

// Launchd installs a per-user launch agent.
type Launchd struct {
	Dir  string
	Exec Exec
}

var _ Installer = (*Launchd)(nil)

func (l *Launchd) path() string {
	return filepath.Join(l.Dir, launchdLabel+".plist")
}

// Plist renders the launch agent property list for job.
func (l *Launchd) Plist(job Job) (string, error) {
	return render(plistTemplate, struct {
		Label        string
		Arguments    []string
		Seconds      int
		Hour, Minute int
	}{
		Label:     launchdLabel,
		Arguments: append([]string{job.Executable}, job.Args()...),
		Seconds:   job.Minutes() * 60,
		Hour:      job.At.Hour,
		Minute:    job.At.Minute,
	})
}

func (l *Launchd) Install(ctx context.Context, job Job) error {
	if err := job.Validate(); err != nil {
		return err
	}
	plist, err := l.Plist(job)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(l.Dir, 0755); err != nil {
		return err
	}
	if err := os.WriteFile(l.path(), []byte(plist), 0644); err != nil {
		return err
	}
	// Reloading picks up a changed schedule; unload fails when nothing is loaded.
	_ = l.Exec(ctx, "launchctl", "unload", l.path())
	return l.Exec(ctx, "launchctl", "load", l.path())
}

func (l *Launchd) Uninstall(ctx context.Context) error {
	_ = l.Exec(ctx, "launchctl", "unload", l.path())
	if err := os.Remove(l.path()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (l *Launchd) Describe() string {
	return l.path()
}

func xmlEscape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
