package conversation

import "sync"

// entry pairs a session's context with its own lock so concurrent updates to
// the same session serialize without blocking other sessions.
type entry struct {
	mu  sync.Mutex
	ctx Context
}

// Store keeps per-session contexts in memory. The outer lock guards the map;
// each entry's lock makes read-merge-write atomic per session.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

func NewStore() *Store {
	return &Store{entries: make(map[string]*entry)}
}

func (s *Store) entryFor(session string) *entry {
	s.mu.RLock()
	e, ok := s.entries[session]
	s.mu.RUnlock()

	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock
	if e, ok := s.entries[session]; ok {
		return e
	}

	e = &entry{}
	s.entries[session] = e
	return e
}

// Get returns a snapshot of the session's context. The second return is
// false for a session never seen before.
func (s *Store) Get(session string) (Context, bool) {
	s.mu.RLock()
	e, ok := s.entries[session]
	s.mu.RUnlock()

	if !ok {
		return Context{}, false
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ctx, true
}

// Update merges u into the session's context and returns the merged
// snapshot. The merge is atomic per session.
func (s *Store) Update(session string, u Update) Context {
	e := s.entryFor(session)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.ctx = merge(e.ctx, u)
	return e.ctx
}

// Clear removes the session's context entirely.
func (s *Store) Clear(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, session)
}

// Sessions returns the ids of all sessions currently holding context.
func (s *Store) Sessions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.entries))
	for id := range s.entries {
		out = append(out, id)
	}
	return out
}
