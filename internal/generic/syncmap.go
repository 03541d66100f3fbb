package generic

import "sync"

// SyncMap is a map guarded by a RWMutex. The zero value is ready to use.
type SyncMap[K comparable, V any] struct {
	mut sync.RWMutex
	m   map[K]V
}

func (m *SyncMap[K, V]) Store(key K, value V) {
	m.mut.Lock()
	defer m.mut.Unlock()

	if m.m == nil {
		m.m = make(map[K]V)
	}

	m.m[key] = value
}

func (m *SyncMap[K, V]) Load(key K) (V, bool) {
	m.mut.RLock()
	defer m.mut.RUnlock()

	v, ok := m.m[key]

	return v, ok
}

func (m *SyncMap[K, V]) Len() int {
	m.mut.RLock()
	defer m.mut.RUnlock()

	return len(m.m)
}

// Copy returns a point-in-time copy of the contents.
func (m *SyncMap[K, V]) Copy() map[K]V {
	m.mut.RLock()
	defer m.mut.RUnlock()

	return MapMerge(m.m)
}
