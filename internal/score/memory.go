package score

import "sync"

// MemoryStore is an in-process Persistence. It backs the arcade when the
// database cannot be opened, and is handy in tests.
type MemoryStore struct {
	mu     sync.Mutex
	scores map[string]float64

	// Err, when set, is returned from every Load and Save.
	Err error
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: make(map[string]float64)}
}

// Load implements Persistence.
func (m *MemoryStore) Load(key string) (float64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return 0, false, m.Err
	}
	v, ok := m.scores[key]
	return v, ok, nil
}

// Save implements Persistence.
func (m *MemoryStore) Save(key string, best float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.scores[key] = best
	return nil
}
