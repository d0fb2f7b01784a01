package storage

import (
	"fmt"
	"slices"
	"sync"
)

type Memory struct {
	mu   sync.RWMutex
	docs map[string][]byte

	// FailWrites makes Set and Remove fail with ErrUnavailable, the way a
	// full or disabled browser storage would.
	FailWrites bool
}

func NewMemory() *Memory {
	return &Memory{docs: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[key]
	if !ok {
		return nil, ErrNotExist
	}
	return slices.Clone(doc), nil
}

func (m *Memory) Set(key string, doc []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites {
		return fmt.Errorf("%w: writes disabled", ErrUnavailable)
	}
	m.docs[key] = slices.Clone(doc)
	return nil
}

func (m *Memory) Remove(key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites {
		return fmt.Errorf("%w: writes disabled", ErrUnavailable)
	}
	delete(m.docs, key)
	return nil
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}
