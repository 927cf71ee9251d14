package schedule

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

const (
	systemdService = "ironlist-notify.service"
	systemdTimer   = "ironlist-notify.timer"
)

var serviceTemplate = template.Must(template.New("service").Parse(`[Unit]
Description=IronList notification

[Service]
Type=oneshot
ExecStart={{.Command}}
`))

var timerTemplate = template.Must(template.New("timer").Parse(`[Unit]
{{- if .Minutes}}
Description=Run IronList notify every {{.Minutes}} minutes

[Timer]
OnActiveSec={{.Seconds}}s
OnUnitActiveSec={{.Seconds}}s
{{- else}}
Description=Run IronList notify daily at {{.At}}

[Timer]
OnCalendar=*-*-* {{.At}}:00
{{- end}}
Persistent=true

[Install]
WantedBy=timers.target
`))

func systemdDir(home string) string {
	return filepath.Join(home, ".config", "systemd", "user")
}

// Systemd installs a user service and timer.
type Systemd struct {
	Dir  string
	Exec Exec
}

var _ Installer = (*Systemd)(nil)

// Units renders the service and timer unit files for job.
func (s *Systemd) Units(job Job) (service, timer string, err error) {
	quoted := make([]string, 0, len(job.Args())+1)
	for _, a := range append([]string{job.Executable}, job.Args()...) {
		quoted = append(quoted, systemdQuote(a))
	}
	service, err = render(serviceTemplate, struct{ Command string }{strings.Join(quoted, " ")})
	if err != nil {
		return "", "", err
	}
	timer, err = render(timerTemplate, struct {
		Minutes, Seconds int
		At               string
	}{job.Minutes(), job.Minutes() * 60, job.At.String()})
	return service, timer, err
}

func (s *Systemd) Install(ctx context.Context, job Job) error {
	if err := job.Validate(); err != nil {
		return err
	}
	service, timer, err := s.Units(job)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.Dir, systemdService), []byte(service), 0644); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.Dir, systemdTimer), []byte(timer), 0644); err != nil {
		return err
	}
	// A failed reload surfaces again on enable.
	_ = s.Exec(ctx, "systemctl", "--user", "daemon-reload")
	return s.Exec(ctx, "systemctl", "--user", "enable", "--now", systemdTimer)
}

func (s *Systemd) Uninstall(ctx context.Context) error {
	disableErr := s.Exec(ctx, "systemctl", "--user", "disable", "--now", systemdTimer)
	for _, name := range []string{systemdService, systemdTimer} {
		if err := os.Remove(filepath.Join(s.Dir, name)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	_ = s.Exec(ctx, "systemctl", "--user", "daemon-reload")
	if disableErr != nil {
		return fmt.Errorf("unit files removed, but %w", disableErr)
	}
	return nil
}

func (s *Systemd) Describe() string {
	return filepath.Join(s.Dir, systemdTimer)
}

// systemdQuote escapes specifiers and quotes an ExecStart word when it holds
// whitespace or quotes.
func systemdQuote(s string) string {
	s = strings.ReplaceAll(s, "%", "%%")
	if s != "" && !strings.ContainsAny(s, " \t\"'\\") {
		return s
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
