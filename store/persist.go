package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Snapshotter is implemented by every store that can dump and restore its
// full state as one blob. Stores know nothing about files; the FileStore
// adapter decides where blobs live.
type Snapshotter interface {
	Namespace() string
	Snapshot() ([]byte, error)
	Restore(data []byte) error
}

// FileStore persists one JSON blob per namespace under a data directory.
// Writes go through a temp file and rename so a crash mid-write never leaves
// a half-written snapshot behind.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(ns string) string {
	return filepath.Join(f.dir, ns+".json")
}

// Load restores a store from its snapshot file. A missing file is not an
// error: the store simply starts empty.
func (f *FileStore) Load(s Snapshotter) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(s.Namespace()))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("store: read %s: %w", s.Namespace(), err)
	}
	if err := s.Restore(data); err != nil {
		return fmt.Errorf("store: restore %s: %w", s.Namespace(), err)
	}
	return nil
}

// Save writes the store's current snapshot to disk.
func (f *FileStore) Save(s Snapshotter) error {
	data, err := s.Snapshot()
	if err != nil {
		return fmt.Errorf("store: snapshot %s: %w", s.Namespace(), err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	dest := f.path(s.Namespace())
	tmp := dest + ".tmp"

	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("store: write %s: %w", s.Namespace(), err)
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return fmt.Errorf("store: write %s: %w", s.Namespace(), err)
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return fmt.Errorf("store: sync %s: %w", s.Namespace(), err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("store: close %s: %w", s.Namespace(), err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return fmt.Errorf("store: rename %s: %w", s.Namespace(), err)
	}
	return nil
}

// Saver returns a notify func that persists the store on every mutation.
// Persistence failures are reported through onErr rather than interrupting
// the mutation that triggered them.
func (f *FileStore) Saver(s Snapshotter, onErr func(error)) func() {
	return func() {
		if err := f.Save(s); err != nil && onErr != nil {
			onErr(err)
		}
	}
}
