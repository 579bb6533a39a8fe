package unique

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

type fileDocument struct {
	Worlds map[string]*fileWorld `yaml:"worlds"`
}

type fileWorld struct {
	CaughtItems []string              `yaml:"caught_items"`
	Items       map[string]fileRecord `yaml:"items"`
}

type fileRecord struct {
	CaughtBy     string `yaml:"caught_by"`
	CaughtByName string `yaml:"caught_by_name"`
	// CaughtAt is epoch milliseconds
	CaughtAt int64 `yaml:"caught_at"`
}

// FileStore keeps every claim in one YAML file, rewritten in full after each insert
type FileStore struct {
	path string

	mu  sync.RWMutex
	doc fileDocument
}

// NewFileStore opens the store at path. A missing file is an empty store.
func NewFileStore(ctx context.Context, path string) (*FileStore, error) {
	s := &FileStore{path: path}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the file, replacing the in-memory state
func (s *FileStore) Reload(_ context.Context) error {
	doc, err := readDocument(s.path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	return nil
}

func readDocument(path string) (fileDocument, error) {
	doc := fileDocument{Worlds: make(map[string]*fileWorld)}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}
	if err != nil {
		return doc, fmt.Errorf("%w: failed to read %s: %v", domain.ErrStoreUnavailable, path, err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("%w: failed to parse %s: %v", domain.ErrStoreUnavailable, path, err)
	}
	if doc.Worlds == nil {
		doc.Worlds = make(map[string]*fileWorld)
	}
	for _, w := range doc.Worlds {
		if w.Items == nil {
			w.Items = make(map[string]fileRecord)
		}
	}
	return doc, nil
}

// Insert records the claim unless the id is already claimed in that world, then rewrites the file.
// A write failure returns true with the error: the in-memory claim is kept.
func (s *FileStore) Insert(_ context.Context, rec domain.UniqueItemRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.doc.Worlds[rec.World]
	if !ok {
		w = &fileWorld{Items: make(map[string]fileRecord)}
		s.doc.Worlds[rec.World] = w
	}
	if _, exists := w.Items[rec.UniqueID]; exists {
		return false, nil
	}

	w.CaughtItems = append(w.CaughtItems, rec.UniqueID)
	w.Items[rec.UniqueID] = fileRecord{
		CaughtBy:     rec.CaughtBy,
		CaughtByName: rec.CaughtByName,
		CaughtAt:     rec.CaughtAt.UnixMilli(),
	}

	if err := s.flushLocked(); err != nil {
		return true, err
	}
	return true, nil
}

// Get returns the claim for (world, id)
func (s *FileStore) Get(_ context.Context, world, uniqueID string) (domain.UniqueItemRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.doc.Worlds[world]
	if !ok {
		return domain.UniqueItemRecord{}, false, nil
	}
	r, ok := w.Items[uniqueID]
	if !ok {
		return domain.UniqueItemRecord{}, false, nil
	}
	return r.toDomain(world, uniqueID), true, nil
}

// ListWorld returns the claims of one world in claim order
func (s *FileStore) ListWorld(_ context.Context, world string) ([]domain.UniqueItemRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listWorldLocked(world), nil
}

// Load returns every claim, grouped by world name
func (s *FileStore) Load(_ context.Context) ([]domain.UniqueItemRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	worlds := make([]string, 0, len(s.doc.Worlds))
	for name := range s.doc.Worlds {
		worlds = append(worlds, name)
	}
	sort.Strings(worlds)

	var out []domain.UniqueItemRecord
	for _, name := range worlds {
		out = append(out, s.listWorldLocked(name)...)
	}
	return out, nil
}

func (s *FileStore) listWorldLocked(world string) []domain.UniqueItemRecord {
	w, ok := s.doc.Worlds[world]
	if !ok {
		return nil
	}
	out := make([]domain.UniqueItemRecord, 0, len(w.Items))
	listed := make(map[string]bool, len(w.CaughtItems))
	for _, id := range w.CaughtItems {
		if r, ok := w.Items[id]; ok && !listed[id] {
			out = append(out, r.toDomain(world, id))
			listed[id] = true
		}
	}
	// items written by hand without a caught_items entry
	var extra []string
	for id := range w.Items {
		if !listed[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	for _, id := range extra {
		out = append(out, w.Items[id].toDomain(world, id))
	}
	return out
}

func (s *FileStore) flushLocked() error {
	data, err := yaml.Marshal(&s.doc)
	if err != nil {
		return fmt.Errorf("%w: failed to encode store: %v", domain.ErrStoreUnavailable, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create %s: %v", domain.ErrStoreUnavailable, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %v", domain.ErrStoreUnavailable, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: failed to write store: %v", domain.ErrStoreUnavailable, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: failed to sync store: %v", domain.ErrStoreUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: failed to close store: %v", domain.ErrStoreUnavailable, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("%w: failed to replace %s: %v", domain.ErrStoreUnavailable, s.path, err)
	}
	return nil
}

func (r fileRecord) toDomain(world, id string) domain.UniqueItemRecord {
	return domain.UniqueItemRecord{
		World:        world,
		UniqueID:     id,
		CaughtBy:     r.CaughtBy,
		CaughtByName: r.CaughtByName,
		CaughtAt:     time.UnixMilli(r.CaughtAt).UTC(),
	}
}
