package edit

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/ironlist/pkg/entry"
	"tableflip.dev/ironlist/pkg/store"
	"tableflip.dev/ironlist/pkg/visible"
)

// A and C are complete, so only B and D are visible by default.
const fixture = "2025-01-01\tA\tcomplete\n" +
	"2025-01-02\tB\n" +
	"2025-01-03\tC\tcomplete\n" +
	"2025-01-04\tD\n"

func setup(t *testing.T) (string, store.Persistence) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ironlist.txt")
	if err := os.WriteFile(path, []byte(fixture), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	p, err := store.Load(&store.Settings{File: path})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return path, p
}

func TestEditMapsVisibleIndex(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		showAll bool
		want    string
	}{{
		name:  "first visible is B",
		index: 1,
		want: "2025-01-01\tA\tcomplete\n" +
			"2025-01-09\tX\tnew\n" +
			"2025-01-03\tC\tcomplete\n" +
			"2025-01-04\tD\n",
	}, {
		name:  "second visible is D",
		index: 2,
		want: "2025-01-01\tA\tcomplete\n" +
			"2025-01-02\tB\n" +
			"2025-01-03\tC\tcomplete\n" +
			"2025-01-09\tX\tnew\n",
	}, {
		name:    "show all counts completed entries",
		index:   3,
		showAll: true,
		want: "2025-01-01\tA\tcomplete\n" +
			"2025-01-02\tB\n" +
			"2025-01-09\tX\tnew\n" +
			"2025-01-04\tD\n",
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, p := setup(t)
			e := &Edit{Index: tt.index, Line: "2025-01-09    X    new", ShowAll: tt.showAll, Out: &bytes.Buffer{}, Persistence: p}
			if err := e.Do(context.Background()); err != nil {
				t.Fatalf("edit: %v", err)
			}
			b, _ := os.ReadFile(path)
			if string(b) != tt.want {
				t.Fatalf("file = %q\nwant %q", b, tt.want)
			}
		})
	}
}

func TestEditOutOfRange(t *testing.T) {
	for _, index := range []int{0, 3} {
		path, p := setup(t)
		e := &Edit{Index: index, Line: "2025-01-09\tX", Out: &bytes.Buffer{}, Persistence: p}
		err := e.Do(context.Background())
		var re *visible.RangeError
		if !errors.As(err, &re) {
			t.Fatalf("index %d: expected RangeError, got %v", index, err)
		}
		if re.Index != index || re.Visible != 2 {
			t.Fatalf("unexpected range error %+v", re)
		}
		if b, _ := os.ReadFile(path); string(b) != fixture {
			t.Fatalf("file changed: %q", b)
		}
	}
}

func TestEditRejectsMalformedReplacement(t *testing.T) {
	path, p := setup(t)
	e := &Edit{Index: 1, Line: "not a date\tX", Out: &bytes.Buffer{}, Persistence: p}
	if err := e.Do(context.Background()); !errors.Is(err, entry.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if b, _ := os.ReadFile(path); string(b) != fixture {
		t.Fatalf("file changed: %q", b)
	}
}
