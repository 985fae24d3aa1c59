package prefs

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Backend is the durable storage behind the preference store. Every blob is
// independently keyed and independently rehydrated.
type Backend interface {
	// Load returns the blob for key. ok is false when no blob exists.
	Load(key string) (data []byte, ok bool, err error)
	// Save durably replaces the blob for key.
	Save(key string, data []byte) error
}

// FileBackend keeps one JSON file per key inside a directory.
type FileBackend struct {
	dir string
}

// NewFileBackend creates the backing directory if needed.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, errors.Wrap(err, "failed to create preference directory")
	}

	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

// Load implements Backend.
func (b *FileBackend) Load(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "failed to read preference blob")
	}

	return data, true, nil
}

// Save implements Backend. The write is immediate, there is no buffering.
func (b *FileBackend) Save(key string, data []byte) error {
	return errors.Wrap(os.WriteFile(b.path(key), data, 0o600), "failed to write preference blob")
}

// MemoryBackend keeps blobs in memory. Used in tests and as a throwaway
// store when no durable directory is wanted.
type MemoryBackend struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{blobs: make(map[string][]byte)}
}

// Load implements Backend.
func (b *MemoryBackend) Load(key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, ok := b.blobs[key]

	return data, ok, nil
}

// Save implements Backend.
func (b *MemoryBackend) Save(key string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.blobs[key] = append([]byte(nil), data...)

	return nil
}
