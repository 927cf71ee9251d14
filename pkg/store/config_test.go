package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("file", "f", "", "")
	fs.Bool("show-all", false, "")
	fs.String("log-level", "", "")
	return fs
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	homedir.DisableCache = true
	t.Setenv("HOME", dir)
	t.Setenv("IRONLIST_CONFIG_PATH", dir)
	t.Setenv("IRONLIST_FILE", "")
	t.Setenv("IRONLIST_SHOW_ALL", "")
	t.Setenv("IRONLIST_WIDTH", "")
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)
	s, err := LoadConfig(testFlags(), "")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if s.File != "" || s.ShowAll {
		t.Fatalf("unexpected settings %+v", s)
	}
	if s.Width != DefaultWidth {
		t.Fatalf("expected default width, got %d", s.Width)
	}
	if s.NotifyTime != DefaultNotifyTime {
		t.Fatalf("expected default notify time, got %q", s.NotifyTime)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	cfg := "file: ~/tasks.txt\nshow_all: true\nwidth: 25\nnotify:\n  time: \"07:30\"\n  interval: 15\n"
	if err := os.WriteFile(filepath.Join(dir, ".ironlist.yaml"), []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	s, err := LoadConfig(testFlags(), "")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if want := filepath.Join(dir, "tasks.txt"); s.File != want {
		t.Fatalf("expected %q, got %q", want, s.File)
	}
	if !s.ShowAll || s.Width != 25 || s.NotifyTime != "07:30" || s.NotifyInterval != "15" {
		t.Fatalf("unexpected settings %+v", s)
	}
	if s.ConfigFile == "" {
		t.Fatalf("expected config file to be recorded")
	}
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, ".ironlist.yaml"), []byte("file: from-config.txt\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("IRONLIST_FILE", "from-env.txt")
	s, err := LoadConfig(testFlags(), "")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if s.File != "from-env.txt" {
		t.Fatalf("env should beat config file, got %q", s.File)
	}

	fs := testFlags()
	if err := fs.Parse([]string{"--file", "from-flag.txt", "--show-all"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	s, err = LoadConfig(fs, "")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if s.File != "from-flag.txt" || !s.ShowAll {
		t.Fatalf("flag should beat env, got %+v", s)
	}
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	dir := isolate(t)
	if _, err := LoadConfig(nil, filepath.Join(dir, "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}
