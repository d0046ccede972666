package sdk

import "sync"

// State is the keyed store a ledger instance owns. Individual values are
// strings: decimal text for scalars, JSON blobs for records. The substrate
// serializes calls per instance, so implementations only need to survive
// sequential access from one instance plus reads from tests.
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// StateProvider hands out named keyed stores, one per ledger instance. The
// registry uses it to give every deployed ledger pair isolated state.
type StateProvider interface {
	State(name string) (State, error)
}

// MemState keeps everything in a map. It backs tests and memory-mode
// registries; BoltStore covers durability.
type MemState struct {
	mu sync.Mutex
	db map[string]string
}

func NewMemState() *MemState {
	return &MemState{db: make(map[string]string)}
}

func (m *MemState) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.db[key] = value
}

func (m *MemState) Get(key string) *string {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MemState) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.db, key)
}

// Len reports the number of stored keys, handy for test assertions.
func (m *MemState) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.db)
}

// MemStore is the memory-mode StateProvider: one MemState per name, created
// on first use.
type MemStore struct {
	mu     sync.Mutex
	states map[string]*MemState
}

// Compile-time interface check.
var _ StateProvider = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{states: make(map[string]*MemState)}
}

func (s *MemStore) State(name string) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[name]
	if !ok {
		st = NewMemState()
		s.states[name] = st
	}
	return st, nil
}
