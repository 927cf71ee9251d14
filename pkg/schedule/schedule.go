// Package schedule installs the notifier as a job of the platform scheduler
// so that no process has to stay running.
package schedule

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"text/template"
	"time"

	"github.com/mitchellh/go-homedir"

	"tableflip.dev/ironlist/pkg/notify"
)

// ErrUnsupported is returned on platforms without a known scheduler.
var ErrUnsupported = errors.New("no supported scheduler on " + runtime.GOOS)

// Job describes the scheduled notify invocation.
type Job struct {
	// Executable is the absolute path of the ironlist binary.
	Executable string
	// At is the daily trigger time.
	At notify.Clock
	// Interval, when set, runs every Interval instead of daily. It is rounded
	// down to whole minutes.
	Interval time.Duration
	// File is passed through as --file when set.
	File string
}

// Minutes is the interval in whole minutes, zero for a daily job.
func (j Job) Minutes() int {
	return int(j.Interval / time.Minute)
}

// Args are the arguments the scheduler passes to Executable.
func (j Job) Args() []string {
	args := []string{"notify", "--once", "--time", j.At.String()}
	if j.File != "" {
		args = append(args, "--file", j.File)
	}
	return args
}

// Validate reports whether the job can be installed.
func (j Job) Validate() error {
	if j.Executable == "" {
		return errors.New("job has no executable")
	}
	if j.Interval != 0 && j.Minutes() < 1 {
		return fmt.Errorf("interval %s is shorter than a minute", j.Interval)
	}
	return nil
}

// Installer registers and removes the notify job.
type Installer interface {
	Install(ctx context.Context, job Job) error
	Uninstall(ctx context.Context) error
	// Describe is a human readable location of the installed job.
	Describe() string
}

// Exec runs an external command. It is swapped in tests.
type Exec func(ctx context.Context, name string, args ...string) error

func run(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s failed: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return nil
}

// New returns the Installer for the running platform.
func New() (Installer, error) {
	home, err := homedir.Dir()
	if err != nil && runtime.GOOS != "windows" {
		return nil, fmt.Errorf("locating home directory: %w", err)
	}
	switch runtime.GOOS {
	case "linux":
		return &Systemd{Dir: systemdDir(home), Exec: run}, nil
	case "darwin":
		return &Launchd{Dir: launchdDir(home), Exec: run}, nil
	case "windows":
		return &Schtasks{Exec: run}, nil
	default:
		return nil, ErrUnsupported
	}
}

// Executable returns the path of the running binary.
func Executable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	return exe, nil
}

func render(t *template.Template, data interface{}) (string, error) {
	var b bytes.Buffer
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
