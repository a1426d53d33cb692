package storage

import (
	"context"
	"sync"
)

// MemorySequence is the fallback counter used when Redis is not
// configured. Numbers are only unique within a single process.
type MemorySequence struct {
	mu       sync.Mutex
	counters map[string]int64
}

func NewMemorySequence() *MemorySequence {
	return &MemorySequence{counters: make(map[string]int64)}
}

func (m *MemorySequence) Next(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counters[key]++
	return m.counters[key], nil
}
