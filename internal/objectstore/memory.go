package objectstore

import (
	"context"
	"fmt"
	"sync"
)

// Memory is an in-process ObjectStore for development and tests. Setting Err
// makes every Put fail, which tests use to simulate an unreachable bucket.
type Memory struct {
	mu      sync.Mutex
	objects map[string][]byte

	Err error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{objects: make(map[string][]byte)}
}

func (m *Memory) Put(_ context.Context, key string, data []byte, _ string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = append([]byte(nil), data...)
	return fmt.Sprintf("memory://%s", key), nil
}

// Len reports how many objects have been stored.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}
