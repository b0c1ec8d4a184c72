package glossary

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"novelarchives/dictionary"
	"novelarchives/model"
)

const defaultSettle = 100 * time.Millisecond

// Source is a glossary file together with the index last built from it.
// Index may be called from any goroutine while Watch runs.
type Source struct {
	path   string
	gen    model.IDGenerator
	log    *slog.Logger
	settle time.Duration
	index  atomic.Pointer[dictionary.Index]
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithIDGenerator sets the generator for entries without an ID.
func WithIDGenerator(gen model.IDGenerator) SourceOption {
	return func(s *Source) { s.gen = gen }
}

// WithLogger sets the logger for reloads and watch errors.
func WithLogger(l *slog.Logger) SourceOption {
	return func(s *Source) { s.log = l }
}

// WithSettle sets how long Watch waits after the last file event before it
// reloads. Editors often write a file in several steps.
func WithSettle(d time.Duration) SourceOption {
	return func(s *Source) { s.settle = d }
}

// Open loads the glossary at path and returns a Source serving its index.
func Open(path string, opts ...SourceOption) (*Source, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("glossary: %w", err)
	}
	s := &Source{path: abs, gen: UUIDGenerator{}, settle: defaultSettle}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if _, err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the absolute path of the glossary file.
func (s *Source) Path() string {
	return s.path
}

// Index returns the current term index.
func (s *Source) Index() *dictionary.Index {
	return s.index.Load()
}

// Reload rebuilds the index from the file. On error the current index stays
// in place.
func (s *Source) Reload() (*dictionary.Index, error) {
	entries, err := Load(s.path)
	if err != nil {
		return nil, err
	}
	terms, err := Build(entries, s.gen)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	idx := dictionary.Build(terms)
	s.index.Store(idx)
	s.log.Info("glossary loaded", "path", s.path, "terms", idx.Len(), "digest", idx.Digest())
	return idx, nil
}

// Watch reloads the glossary whenever the file changes, until ctx is done.
// After each successful reload notify, if not nil, is called with the new
// index. A failed reload is logged and the previous index is kept.
func (s *Source) Watch(ctx context.Context, notify func(*dictionary.Index)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("glossary: watch: %w", err)
	}
	defer w.Close()
	// the directory is watched since editors replace files by renaming
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("glossary: watch %s: %w", s.path, err)
	}

	var settled <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != s.path {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			settled = time.After(s.settle)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("glossary watch error", "path", s.path, "err", err)
		case <-settled:
			settled = nil
			idx, err := s.Reload()
			if err != nil {
				s.log.Error("glossary reload failed, keeping previous index", "path", s.path, "err", err)
				continue
			}
			if notify != nil {
				notify(idx)
			}
		}
	}
}
