package types

import (
	"strings"
	"sync"
)

type MultiError struct {
	mu     sync.Mutex
	Errors []error
}

func (m *MultiError) Error() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	msgs := make([]string, len(m.Errors))
	for i, err := range m.Errors {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

func (m *MultiError) Add(err error) {
	if err == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors = append(m.Errors, err)
}

func (m *MultiError) IsEmpty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Errors) == 0
}

func (m *MultiError) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Errors)
}

// ErrOrNil returns m when it holds at least one error.
func (m *MultiError) ErrOrNil() error {
	if m == nil || m.IsEmpty() {
		return nil
	}
	return m
}

// Unwrap exposes the collected errors to errors.Is / errors.As.
func (m *MultiError) Unwrap() []error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]error(nil), m.Errors...)
}
