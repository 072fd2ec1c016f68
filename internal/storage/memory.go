package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/starford/boreacrutis/internal/apperr"
)

// Memory is a Provider that keeps the snapshot in process. Nothing survives
// a restart.
type Memory struct {
	mu   sync.Mutex
	data []byte
}

// NewMemory returns an empty Memory provider.
func NewMemory() *Memory { return &Memory{} }

// Load implements Provider.
func (m *Memory) Load(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, fmt.Errorf("storage: memory: %w", apperr.ErrNotFound)
	}
	return append([]byte(nil), m.data...), nil
}

// Save implements Provider.
func (m *Memory) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	return nil
}

// Close implements Provider.
func (m *Memory) Close() error { return nil }
