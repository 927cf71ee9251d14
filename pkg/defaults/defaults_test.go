package defaults

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmpty(t *testing.T) {
	s := New(t.TempDir(), t.TempDir())
	path, ok, err := s.Load()
	if err != nil || ok || path != "" {
		t.Fatalf("expected nothing saved, got %q %v %v", path, ok, err)
	}
}

func TestSaveLoadClear(t *testing.T) {
	home := t.TempDir()
	s := New(home, t.TempDir())

	target := filepath.Join(t.TempDir(), "tasks.txt")
	if err := s.Save(target); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := s.Location(); got != filepath.Join(home, Key) {
		t.Fatalf("unexpected location %q", got)
	}
	b, err := os.ReadFile(filepath.Join(home, Key))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(b) != target+"\n" {
		t.Fatalf("unexpected file content %q", b)
	}

	path, ok, err := s.Load()
	if err != nil || !ok || path != target {
		t.Fatalf("load = %q %v %v", path, ok, err)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := s.Load(); ok {
		t.Fatalf("expected default to be cleared")
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear twice: %v", err)
	}
}

func TestLoadFallsBack(t *testing.T) {
	home, cwd := t.TempDir(), t.TempDir()
	if err := os.WriteFile(filepath.Join(home, Key), []byte("  \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cwd, Key), []byte("/data/tasks.txt\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	path, ok, err := New(home, cwd).Load()
	if err != nil || !ok || path != "/data/tasks.txt" {
		t.Fatalf("load = %q %v %v", path, ok, err)
	}
}

func TestSaveMakesAbsolute(t *testing.T) {
	home := t.TempDir()
	s := New(home)
	if err := s.Save("relative.txt"); err != nil {
		t.Fatalf("save: %v", err)
	}
	path, _, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !filepath.IsAbs(path) || filepath.Base(path) != "relative.txt" {
		t.Fatalf("expected absolute path, got %q", path)
	}
}

func TestSaveRejectsEmpty(t *testing.T) {
	if err := New(t.TempDir()).Save("  "); err == nil {
		t.Fatalf("expected error")
	}
	if err := New().Save("x"); err == nil {
		t.Fatalf("expected error without locations")
	}
}
