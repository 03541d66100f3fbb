package labels

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStorage keeps labels in a JSON file shaped as {namespace: {key: value}},
// so several namespaces can share the same file. The file is rewritten
// atomically on every Put.
type FileStorage struct {
	mut       sync.RWMutex
	path      string
	namespace string
	data      map[string]map[string]string
}

// OpenFileStorage loads the file at path, creating an empty storage if the file
// does not exist yet.
func OpenFileStorage(path, namespace string) (*FileStorage, error) {
	if namespace == "" {
		return nil, fmt.Errorf("namespace cannot be empty")
	}

	s := &FileStorage{
		path:      path,
		namespace: namespace,
		data:      make(map[string]map[string]string),
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}

		return nil, fmt.Errorf("failed to read labels file: %w", err)
	}

	if len(b) > 0 {
		if err := json.Unmarshal(b, &s.data); err != nil {
			return nil, fmt.Errorf("failed to parse labels file %s: %w", path, err)
		}
	}

	// A file holding null decodes into a nil map.
	if s.data == nil {
		s.data = make(map[string]map[string]string)
	}

	return s, nil
}

func (s *FileStorage) Get(_ context.Context, key string) (string, error) {
	s.mut.RLock()
	defer s.mut.RUnlock()

	value, ok := s.data[s.namespace][key]
	if !ok {
		return "", ErrNotFound
	}

	return value, nil
}

func (s *FileStorage) Put(_ context.Context, key, value string) error {
	s.mut.Lock()
	defer s.mut.Unlock()

	ns := s.data[s.namespace]
	if ns == nil {
		ns = make(map[string]string)
		s.data[s.namespace] = ns
	}

	prev, existed := ns[key]
	ns[key] = value

	if err := s.flush(); err != nil {
		// Keep memory consistent with what is on disk.
		if existed {
			ns[key] = prev
		} else {
			delete(ns, key)
		}

		return err
	}

	return nil
}

func (s *FileStorage) flush() error {
	b, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode labels: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create labels directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write labels: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync labels: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close labels file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace labels file: %w", err)
	}

	return nil
}
