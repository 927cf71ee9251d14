package complete

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/ironlist/pkg/store"
	"tableflip.dev/ironlist/pkg/visible"
)

func setup(t *testing.T, content string) (string, store.Persistence) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ironlist.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	p, err := store.Load(&store.Settings{File: path})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return path, p
}

func TestCompleteVisibleEntry(t *testing.T) {
	path, p := setup(t, "2025-01-02\tB\n2025-01-01    A    Complete\n2025-01-03\tC\twork\n")
	var out bytes.Buffer
	c := &Complete{Index: 2, Out: &out, Persistence: p}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("complete: %v", err)
	}
	want := "2025-01-01\tA\tComplete\n2025-01-02\tB\n2025-01-03\tC\twork,complete\n"
	if b, _ := os.ReadFile(path); string(b) != want {
		t.Fatalf("file = %q\nwant %q", b, want)
	}
	if got := out.String(); got != "Marked entry 2 as complete in "+path+"\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestCompleteIsIdempotent(t *testing.T) {
	const content = "2025-01-01\tA\tcomplete\n"
	path, p := setup(t, content)
	c := &Complete{Index: 1, ShowAll: true, Out: &bytes.Buffer{}, Persistence: p}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if b, _ := os.ReadFile(path); string(b) != content {
		t.Fatalf("complete tag duplicated: %q", b)
	}
}

func TestCompleteOutOfRange(t *testing.T) {
	const content = "2025-01-01\tA\tcomplete\n"
	path, p := setup(t, content)
	c := &Complete{Index: 1, Out: &bytes.Buffer{}, Persistence: p}
	err := c.Do(context.Background())
	var re *visible.RangeError
	if !errors.As(err, &re) || re.Visible != 0 {
		t.Fatalf("expected RangeError with no visible entries, got %v", err)
	}
	if b, _ := os.ReadFile(path); string(b) != content {
		t.Fatalf("file changed: %q", b)
	}
}
