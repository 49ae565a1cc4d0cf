package agencydelete

import "sync"

// Store keeps at most one deletion flow per session. Flow state is held in
// memory only; an operator who loses it simply starts over.
type Store struct {
	mu    sync.Mutex
	flows map[string]FlowState
}

func NewStore() *Store {
	return &Store{flows: make(map[string]FlowState)}
}

func (s *Store) Get(sessionID string) (FlowState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.flows[sessionID]
	return f, ok
}

func (s *Store) Set(sessionID string, f FlowState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flows[sessionID] = f
}

func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flows, sessionID)
}
