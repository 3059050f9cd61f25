package store

import (
	"encoding/json"
	"sync"
)

// MemoryStore is the injectable in-memory backend used by tests. Update
// stages writes on a copy and swaps it in only when the callback succeeds,
// matching BoltStore's all-or-nothing semantics.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *MemoryStore {
	return &MemoryStore{data: map[string][]byte{}}
}

func (s *MemoryStore) Close() error { return nil }

type memTx struct {
	data map[string][]byte
}

func (t *memTx) Get(key string, into any) (bool, error) {
	raw, ok := t.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return true, err
	}
	return true, nil
}

func (t *memTx) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	t.data[key] = raw
	return nil
}

func (t *memTx) Remove(key string) error {
	delete(t.data, key)
	return nil
}

func (s *MemoryStore) Get(key string, into any) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return (&memTx{data: s.data}).Get(key, into)
}

func (s *MemoryStore) Set(key string, v any) error {
	return s.Update(func(tx Tx) error { return tx.Set(key, v) })
}

func (s *MemoryStore) Remove(key string) error {
	return s.Update(func(tx Tx) error { return tx.Remove(key) })
}

func (s *MemoryStore) Update(fn func(tx Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := make(map[string][]byte, len(s.data))
	for k, v := range s.data {
		staged[k] = v
	}
	if err := fn(&memTx{data: staged}); err != nil {
		return err
	}
	s.data = staged
	return nil
}
