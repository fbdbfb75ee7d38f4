// Package store owns the two pieces of persisted state: the user profile
// and the custom graph. Persistence is a flat key→JSON-document mapping
// behind the Backend interface, so tests can swap the file backend for an
// in-memory one.
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Backend is a minimal key-value document store.
type Backend interface {
	// Get returns the stored document and whether the key exists.
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

// FileBackend stores each key as a JSON file under a data directory.
type FileBackend struct {
	dir string
}

// NewFileBackend creates the data directory if needed and returns a
// backend rooted there.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

// Get reads the document for key.
func (b *FileBackend) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return data, true, nil
}

// Put writes the document for key.
func (b *FileBackend) Put(key string, value []byte) error {
	if err := os.WriteFile(b.path(key), value, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes the document for key. Deleting a missing key is a no-op.
func (b *FileBackend) Delete(key string) error {
	err := os.Remove(b.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// MemBackend is an in-memory Backend for tests.
type MemBackend struct {
	docs map[string][]byte
}

// NewMemBackend returns an empty in-memory backend.
func NewMemBackend() *MemBackend {
	return &MemBackend{docs: map[string][]byte{}}
}

// Get returns the stored document and whether the key exists.
func (b *MemBackend) Get(key string) ([]byte, bool, error) {
	doc, ok := b.docs[key]
	return doc, ok, nil
}

// Put stores the document under key.
func (b *MemBackend) Put(key string, value []byte) error {
	b.docs[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes the document under key.
func (b *MemBackend) Delete(key string) error {
	delete(b.docs, key)
	return nil
}
