package schedule

import (
	"context"
	"strconv"
	"strings"
)

const taskName = "IronList Notify"

// Schtasks registers a Windows scheduled task.
type Schtasks struct {
	Exec Exec
}

var _ Installer = (*Schtasks)(nil)

// CreateArgs are the schtasks arguments that register job.
func (s *Schtasks) CreateArgs(job Job) []string {
	words := append([]string{job.Executable}, job.Args()...)
	for i, w := range words {
		if strings.ContainsAny(w, " \t") {
			words[i] = `"` + w + `"`
		}
	}
	args := []string{"/Create", "/TN", taskName, "/TR", strings.Join(words, " ")}
	if m := job.Minutes(); m > 0 {
		args = append(args, "/SC", "MINUTE", "/MO", strconv.Itoa(m))
	} else {
		args = append(args, "/SC", "DAILY", "/ST", job.At.String())
	}
	return append(args, "/F")
}

func (s *Schtasks) Install(ctx context.Context, job Job) error {
	if err := job.Validate(); err != nil {
		return err
	}
	return s.Exec(ctx, "schtasks", s.CreateArgs(job)...)
}

func (s *Schtasks) Uninstall(ctx context.Context) error {
	return s.Exec(ctx, "schtasks", "/Delete", "/TN", taskName, "/F")
}

func (s *Schtasks) Describe() string {
	return "scheduled task " + strconv.Quote(taskName)
}
