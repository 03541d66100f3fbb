package multierror

import (
	"fmt"
	"strings"
	"sync"
)

type entry[T comparable] struct {
	key T
	err error
}

// Error combines errors of several named steps, e.g. shutdown of components.
// Errors are reported in the order they were added.
type Error[T comparable] struct {
	mu      sync.Mutex
	entries []entry[T]
}

func New[T comparable]() *Error[T] {
	return &Error[T]{}
}

func (m *Error[T]) Error() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	parts := make([]string, len(m.entries))
	for i, e := range m.entries {
		parts[i] = fmt.Sprintf("%v: %s", e.key, e.err)
	}

	return strings.Join(parts, "; ")
}

func (m *Error[T]) Unwrap() []error {
	m.mu.Lock()
	defer m.mu.Unlock()

	errs := make([]error, len(m.entries))
	for i, e := range m.entries {
		errs[i] = e.err
	}

	return errs
}

func (m *Error[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}

// Add records err under key. Nil errors are ignored.
func (m *Error[T]) Add(key T, err error) {
	if err == nil {
		return
	}

	m.mu.Lock()
	m.entries = append(m.entries, entry[T]{key: key, err: err})
	m.mu.Unlock()
}

// Combined returns m if it holds any errors, nil otherwise.
func (m *Error[T]) Combined() error {
	if m.Len() == 0 {
		return nil
	}

	return m
}
