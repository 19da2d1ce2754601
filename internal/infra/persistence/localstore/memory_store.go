package localstore

import "sync"

// memoryStore is an in-process Store used by tests and ephemeral runs. It
// honors the same contract as the file-backed store: whole-snapshot values,
// absence reported via found=false.
type memoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

// NewMemoryStore creates an empty in-memory Store.
func NewMemoryStore() Store {
	return &memoryStore{snapshots: make(map[string][]byte)}
}

func (s *memoryStore) Read(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, found := s.snapshots[key]
	if !found {
		return nil, false, nil
	}

	blob := make([]byte, len(stored))
	copy(blob, stored)

	return blob, true, nil
}

func (s *memoryStore) Write(key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(blob))
	copy(stored, blob)
	s.snapshots[key] = stored

	return nil
}
