// Package store persists entries in a flat, line oriented text file.
package store

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/gofrs/flock"

	"tableflip.dev/ironlist/pkg/entry"
	"tableflip.dev/ironlist/pkg/logging"
)

// Persistence defines the persistence contract for entries.
type Persistence interface {
	// Path is the backing file.
	Path() string
	// ListAll reads every valid entry, sorted by date ascending. Malformed
	// lines are skipped with a warning. A missing file is an error.
	ListAll(ctx context.Context) ([]*entry.Entry, error)
	// Append validates raw and appends its canonical form, creating the file
	// and parent directories as needed.
	Append(raw string) (*entry.Entry, error)
	// Rewrite replaces the file content with entries, in the given order.
	Rewrite(entries []*entry.Entry) error
	// Watch streams change events for the backing file until ctx is done.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Option customizes Load.
type Option func(*persistence)

// WithLogger sets the logger used for per-line warnings.
func WithLogger(l *log.Logger) Option {
	return func(p *persistence) {
		p.log = l
	}
}

// Load creates a Persistence for the file named by cfg.
func Load(cfg Config, opts ...Option) (Persistence, error) {
	if cfg == nil {
		return nil, errors.New("store: no config")
	}
	path := strings.TrimSpace(cfg.Path())
	if path == "" {
		return nil, errors.New("store: no backing file configured")
	}
	p := &persistence{path: filepath.Clean(path)}
	for _, o := range opts {
		o(p)
	}
	if p.log == nil {
		p.log = logging.Discard()
	}
	return p, nil
}

type persistence struct {
	path string
	log  *log.Logger
}

func (p *persistence) Path() string {
	return p.path
}

// LineError describes a line that could not be loaded.
type LineError struct {
	Line    int
	Content string
	Err     error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Content)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

var errInvalidUTF8 = errors.New("invalid UTF-8")

func (p *persistence) ListAll(ctx context.Context) ([]*entry.Entry, error) {
	f, err := os.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	defer f.Close()

	all, problems, err := read(ctx, f)
	for _, le := range problems {
		if errors.Is(le.Err, entry.ErrMalformed) {
			p.log.Warn("skipping malformed line", "line", le.Line, "content", le.Content)
		} else {
			p.log.Warn("error reading line", "line", le.Line, "err", le.Err)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", p.path, err)
	}
	Sort(all)
	return all, nil
}

// read parses r line by line. Lines that fail are returned as problems and
// never stop the read.
func read(ctx context.Context, r io.Reader) ([]*entry.Entry, []*LineError, error) {
	var (
		all      []*entry.Entry
		problems []*LineError
	)
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return nil, problems, err
		}
		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			problems = append(problems, &LineError{Line: n, Err: err})
			return all, problems, nil
		}
		if line == "" && errors.Is(err, io.EOF) {
			break
		}
		line = strings.TrimRight(line, "\r\n")
		if !utf8.ValidString(line) {
			problems = append(problems, &LineError{Line: n, Err: errInvalidUTF8})
		} else if e, perr := entry.Parse(line); perr != nil {
			problems = append(problems, &LineError{Line: n, Content: line, Err: perr})
		} else {
			all = append(all, e)
		}
		if errors.Is(err, io.EOF) {
			break
		}
	}
	return all, problems, nil
}

// Sort orders entries by date ascending, keeping the file order of entries
// on the same day.
func Sort(entries []*entry.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
}

func (p *persistence) Append(raw string) (*entry.Entry, error) {
	e, err := entry.Parse(raw)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure directory: %w", err)
	}
	unlock, err := p.lock()
	if err != nil {
		return nil, err
	}
	defer unlock()

	f, err := os.OpenFile(p.path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	if missing, err := missingNewline(f); err != nil {
		return nil, fmt.Errorf("store: inspect %s: %w", p.path, err)
	} else if missing {
		buf.WriteByte('\n')
	}
	buf.WriteString(entry.Format(e))
	buf.WriteByte('\n')
	if _, err := f.Write(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("store: append %s: %w", p.path, err)
	}
	return e, nil
}

// missingNewline reports whether a non-empty file does not end in a newline.
func missingNewline(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] != '\n', nil
}

func (p *persistence) Rewrite(entries []*entry.Entry) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("store: ensure directory: %w", err)
	}
	unlock, err := p.lock()
	if err != nil {
		return err
	}
	defer unlock()

	var buf bytes.Buffer
	for _, e := range entries {
		buf.WriteString(entry.Format(e))
		buf.WriteByte('\n')
	}

	perm := os.FileMode(0o644)
	if info, err := os.Stat(p.path); err == nil {
		perm = info.Mode().Perm()
	}
	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), perm); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("store: replace %s: %w", p.path, err)
	}
	return nil
}

// lock takes the advisory write lock that serializes ironlist writers.
func (p *persistence) lock() (func(), error) {
	fl := flock.New(p.path + ".lock")
	if err := fl.Lock(); err != nil {
		return nil, fmt.Errorf("store: lock %s: %w", p.path, err)
	}
	return func() {
		if err := fl.Unlock(); err != nil {
			p.log.Warn("unlock failed", "path", p.path, "err", err)
		}
	}, nil
}
