package info

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/ironlist/pkg/defaults"
	"tableflip.dev/ironlist/pkg/store"
)

func init() {
	color.NoColor = true
}

func TestInfo(t *testing.T) {
	t.Setenv("IRONLIST_CONFIG_PATH", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "ironlist.txt")
	content := "2025-01-02\tB\n2025-01-01\tA\tcomplete\n2025-02-01\tC\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	p, err := store.Load(&store.Settings{File: path})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	d := defaults.New(dir)
	if err := d.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	var out bytes.Buffer
	i := &Info{Settings: &store.Settings{File: path}, Defaults: d, Persistence: p, Out: &out}
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("info: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"not set",
		"Saved default",
		path,
		"2025-01-01 .. 2025-02-01",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if !lineHas(got, "Open", "2") || !lineHas(got, "Completed", "1") || !lineHas(got, "Entries", "3") {
		t.Errorf("unexpected counts:\n%s", got)
	}
}

func TestInfoUnreadableFile(t *testing.T) {
	p, err := store.Load(&store.Settings{File: filepath.Join(t.TempDir(), "missing.txt")})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	var out bytes.Buffer
	i := &Info{Persistence: p, Out: &out}
	if err := i.Do(context.Background()); err != nil {
		t.Fatalf("info should report, not fail: %v", err)
	}
	if !strings.Contains(out.String(), "missing.txt") {
		t.Fatalf("expected the path in output:\n%s", out.String())
	}
}

func lineHas(out, key, value string) bool {
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 2 && fields[0] == key && fields[1] == value {
			return true
		}
	}
	return false
}
