package store

import (
	"log/slog"
	"sync"

	"storefront-engine/internal/infra"
)

// MemoryStore is a process-local Store. Values are copied on the way in and
// out.
type MemoryStore struct {
	logger *slog.Logger
	mu     sync.RWMutex
	data   map[string][]byte
}

func NewMemoryStore(logger *slog.Logger) *MemoryStore {
	return &MemoryStore{logger: logger, data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, key, "no stored value", nil)
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *MemoryStore) Save(key string, data []byte) error {
	v := make([]byte, len(data))
	copy(v, data)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = v
	return nil
}

// Raw returns the stored bytes as text, for tests that check the
// persisted layout.
func (s *MemoryStore) Raw(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return string(v), ok
}
