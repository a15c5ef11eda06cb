package store

import (
	"context"
	"sync"
	"time"

	"github.com/abhisek/mathsprint/internal/problemgen"
)

// GameRecord is the persisted result of one completed round.
type GameRecord struct {
	ID        string            `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
	Score     int               `json:"score"`
	Accuracy  int               `json:"accuracy"` // 0-100
	Config    problemgen.Config `json:"config"`
}

// BlobStore is a durable key-value store of opaque blobs.
type BlobStore interface {
	// Load returns the blob stored under key. A missing key returns
	// (nil, false, nil).
	Load(ctx context.Context, key string) ([]byte, bool, error)

	// Save stores value under key, replacing any previous blob.
	Save(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// MemoryStore is an in-process BlobStore. It is safe for concurrent use.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

var _ BlobStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (m *MemoryStore) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *MemoryStore) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}
