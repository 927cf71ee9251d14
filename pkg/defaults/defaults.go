// Package defaults remembers the backing file to use when none is given.
//
// The saved path lives in a one-line file named .ironlist_default, in the home
// directory or, failing that, the current directory.
package defaults

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"
)

// Key is the file name of the saved default.
const Key = ".ironlist_default"

// Store reads and writes the saved default path. Locations are consulted in
// order; the first one is where Save writes.
type Store struct {
	locations []*diskv.Diskv
}

// New returns a Store over the given directories.
func New(dirs ...string) *Store {
	s := &Store{}
	for _, dir := range dirs {
		s.locations = append(s.locations, diskv.New(diskv.Options{
			BasePath:     dir,
			CacheSizeMax: 0,
			FilePerm:     0o644,
			PathPerm:     0o755,
		}))
	}
	return s
}

// Default returns a Store over the home directory and the current directory.
func Default() *Store {
	var dirs []string
	if home, err := homedir.Dir(); err == nil && home != "" {
		dirs = append(dirs, home)
	}
	return New(append(dirs, ".")...)
}

// Location is the file Save writes to.
func (s *Store) Location() string {
	if len(s.locations) == 0 {
		return ""
	}
	return filepath.Join(s.locations[0].BasePath, Key)
}

// Load returns the saved path. ok is false when nothing is saved.
func (s *Store) Load() (path string, ok bool, err error) {
	for _, d := range s.locations {
		if !d.Has(Key) {
			continue
		}
		b, err := d.Read(Key)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return "", false, fmt.Errorf("defaults: read %s: %w", filepath.Join(d.BasePath, Key), err)
		}
		if v := strings.TrimSpace(string(b)); v != "" {
			return v, true, nil
		}
	}
	return "", false, nil
}

// Save persists path as the default. Relative paths are made absolute so the
// default works from any directory.
func (s *Store) Save(path string) error {
	if len(s.locations) == 0 {
		return errors.New("defaults: no location to save to")
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("defaults: empty path")
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return err
	}
	if err := s.locations[0].Write(Key, []byte(abs+"\n")); err != nil {
		return fmt.Errorf("defaults: write %s: %w", s.Location(), err)
	}
	return nil
}

// Clear removes the first saved default found.
func (s *Store) Clear() error {
	for _, d := range s.locations {
		if !d.Has(Key) {
			continue
		}
		if err := d.Erase(Key); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("defaults: remove %s: %w", filepath.Join(d.BasePath, Key), err)
		}
		return nil
	}
	return nil
}
