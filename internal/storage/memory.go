package storage

import (
	"context"
	"sync"
)

// Memory is an in-process substrate. Failures can be injected to exercise
// the error paths of callers.
type Memory struct {
	mu      sync.Mutex
	values  map[string]string
	writes  int
	GetErr  error
	SetErr  error
	OnWrite func(key, value string)
}

// NewMemory creates an empty in-memory substrate
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the stored value
func (m *Memory) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetErr != nil {
		return "", false, &IOError{Op: "get", Key: key, Err: m.GetErr}
	}
	if err := ctx.Err(); err != nil {
		return "", false, &IOError{Op: "get", Key: key, Err: err}
	}
	value, ok := m.values[key]
	return value, ok && value != "", nil
}

// Set stores the value and counts the write
func (m *Memory) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	if m.SetErr != nil {
		m.mu.Unlock()
		return &IOError{Op: "set", Key: key, Err: m.SetErr}
	}
	if err := ctx.Err(); err != nil {
		m.mu.Unlock()
		return &IOError{Op: "set", Key: key, Err: err}
	}
	m.values[key] = value
	m.writes++
	hook := m.OnWrite
	m.mu.Unlock()

	if hook != nil {
		hook(key, value)
	}
	return nil
}

// Writes returns the number of successful Set calls
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// Value returns the raw stored value for key
func (m *Memory) Value(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key]
}
