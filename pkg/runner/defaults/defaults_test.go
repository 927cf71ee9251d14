package defaults

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tableflip.dev/ironlist/pkg/defaults"
)

func TestShowNothingSaved(t *testing.T) {
	var out bytes.Buffer
	d := &Defaults{Store: defaults.New(t.TempDir()), Show: true, Out: &out}
	if err := d.Do(context.Background()); err != nil {
		t.Fatalf("show: %v", err)
	}
	if out.String() != "No saved default\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestSetShowClear(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "todo.txt")
	if err := os.WriteFile(target, nil, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := defaults.New(dir)

	var out bytes.Buffer
	if err := (&Defaults{Store: store, Set: target, Out: &out}).Do(context.Background()); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := out.String(); got != "Saved default path to config: "+target+"\n" {
		t.Fatalf("unexpected output %q", got)
	}

	out.Reset()
	if err := (&Defaults{Store: store, Show: true, Out: &out}).Do(context.Background()); err != nil {
		t.Fatalf("show: %v", err)
	}
	if got := out.String(); got != "Saved default: "+target+"\n" {
		t.Fatalf("unexpected output %q", got)
	}

	out.Reset()
	if err := (&Defaults{Store: store, Set: Clear, Out: &out}).Do(context.Background()); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := store.Load(); ok {
		t.Fatalf("expected default cleared")
	}
}

func TestSetMissingPath(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "new", "todo.txt")

	tests := []struct {
		name    string
		answer  bool
		confirm bool
		created bool
	}{
		{name: "no prompt declines"},
		{name: "declined", confirm: true},
		{name: "accepted", confirm: true, answer: true, created: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := defaults.New(t.TempDir())
			var out bytes.Buffer
			d := &Defaults{Store: store, Set: target, Out: &out}
			if tt.confirm {
				d.Confirm = func(string) (bool, error) { return tt.answer, nil }
			}
			if err := d.Do(context.Background()); err != nil {
				t.Fatalf("set: %v", err)
			}
			_, statErr := os.Stat(target)
			_, saved, _ := store.Load()
			if tt.created != (statErr == nil) || tt.created != saved {
				t.Fatalf("created=%v saved=%v, want %v\n%s", statErr == nil, saved, tt.created, out.String())
			}
			if !tt.created && !strings.Contains(out.String(), "Aborted; not saving default.") {
				t.Fatalf("expected abort message:\n%s", out.String())
			}
		})
	}
}
