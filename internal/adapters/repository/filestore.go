package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/okian/trendnote/internal/notesource"
)

// File permission constants.
const (
	filePermission      = 0600
	directoryPermission = 0750
)

// timestampLayout names historical artifact files.
const timestampLayout = "20060102_150405"

// Option applies a configuration option to the FileStore.
type Option func(*FileStore)

// WithDir sets the directory artifacts are written to.
func WithDir(dir string) Option {
	return func(s *FileStore) {
		if dir != "" {
			s.dir = dir
		}
	}
}

// WithNow overrides the clock used for timestamped file names.
func WithNow(now func() time.Time) Option {
	return func(s *FileStore) {
		if now != nil {
			s.now = now
		}
	}
}

// FileStore implements Store on the local filesystem.
type FileStore struct {
	dir string
	now func() time.Time
}

// NewFileStore creates a file store with configuration options.
func NewFileStore(opts ...Option) *FileStore {
	s := &FileStore{
		dir: "data",
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveNotes persists a fetched note batch.
func (s *FileStore) SaveNotes(ctx context.Context, batch notesource.Batch) (string, error) {
	return s.save(ctx, kindNotes, batch)
}

// SaveAnalysis persists an analysis document.
func (s *FileStore) SaveAnalysis(ctx context.Context, doc AnalysisDocument) (string, error) {
	return s.save(ctx, kindAnalysis, doc)
}

// SaveDrafts persists a drafts document.
func (s *FileStore) SaveDrafts(ctx context.Context, doc DraftsDocument) (string, error) {
	return s.save(ctx, kindDrafts, doc)
}

// LatestNotes loads the most recent note batch.
func (s *FileStore) LatestNotes(ctx context.Context) (notesource.Batch, error) {
	var batch notesource.Batch
	err := s.loadLatest(ctx, kindNotes, &batch)
	return batch, err
}

// LatestAnalysis loads the most recent analysis document.
func (s *FileStore) LatestAnalysis(ctx context.Context) (AnalysisDocument, error) {
	var doc AnalysisDocument
	err := s.loadLatest(ctx, kindAnalysis, &doc)
	return doc, err
}

// LatestDrafts loads the most recent drafts document.
func (s *FileStore) LatestDrafts(ctx context.Context) (DraftsDocument, error) {
	var doc DraftsDocument
	err := s.loadLatest(ctx, kindDrafts, &doc)
	return doc, err
}

// save writes the timestamped file and then refreshes the latest file.
func (s *FileStore) save(ctx context.Context, kind string, v any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("save %s cancelled: %w", kind, err)
	}
	if err := os.MkdirAll(s.dir, directoryPermission); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal %s: %w", kind, err)
	}

	stamped := filepath.Join(s.dir, kind+"_"+s.now().Format(timestampLayout)+".json")
	if err := os.WriteFile(stamped, data, filePermission); err != nil {
		return "", fmt.Errorf("write %s: %w", stamped, err)
	}

	latest := filepath.Join(s.dir, kind+"_latest.json")
	if err := os.WriteFile(latest, data, filePermission); err != nil {
		return "", fmt.Errorf("write %s: %w", latest, err)
	}

	return stamped, nil
}

// loadLatest prefers the latest file and falls back to the newest
// timestamped file, matching how readers discover current state.
func (s *FileStore) loadLatest(ctx context.Context, kind string, v any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("load %s cancelled: %w", kind, err)
	}

	latest := filepath.Join(s.dir, kind+"_latest.json")
	data, err := os.ReadFile(latest)
	if err == nil {
		if uerr := json.Unmarshal(data, v); uerr != nil {
			return fmt.Errorf("decode %s: %w", latest, uerr)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("read %s: %w", latest, err)
	}

	path, err := s.newestStamped(kind)
	if err != nil {
		return err
	}
	data, err = os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// newestStamped returns the newest timestamped file for kind.
// Timestamped names sort lexicographically by recency.
func (s *FileStore) newestStamped(kind string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, kind+"_*.json"))
	if err != nil {
		return "", fmt.Errorf("glob %s files: %w", kind, err)
	}

	stamped := matches[:0]
	latestName := kind + "_latest.json"
	for _, m := range matches {
		if filepath.Base(m) != latestName {
			stamped = append(stamped, m)
		}
	}
	if len(stamped) == 0 {
		return "", fmt.Errorf("%s: %w", kind, ErrNotFound)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(stamped)))
	return stamped[0], nil
}
