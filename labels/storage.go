package labels

//go:generate mockgen -source=etcd.go -destination=mock/etcd_mock.go -package=mock

import (
	"context"
	"errors"

	"github.com/maxpoletaev/meshconsole/internal/generic"
)

// Namespace is the storage namespace used for node labels.
const Namespace = "nodeLabel"

// ErrNotFound is returned by storages when there is no value for a key.
var ErrNotFound = errors.New("label not found")

// Storage is a key/value store scoped to a single namespace. Implementations
// must be safe for concurrent use. Values never expire.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
}

// MemoryStorage keeps labels in process memory. Labels are lost on restart.
type MemoryStorage struct {
	items generic.SyncMap[string, string]
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Get(_ context.Context, key string) (string, error) {
	value, ok := s.items.Load(key)
	if !ok {
		return "", ErrNotFound
	}

	return value, nil
}

func (s *MemoryStorage) Put(_ context.Context, key, value string) error {
	s.items.Store(key, value)
	return nil
}

// All returns a copy of all stored labels.
func (s *MemoryStorage) All() map[string]string {
	return s.items.Copy()
}
