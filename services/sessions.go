package services

import "sync"

// Sessions holds in-progress draft edits, keyed by quote number. A
// draft lives here from create until save or discard; all recomputation
// happens on the in-memory copy and nothing touches storage until the
// handler persists the final quote. Last write wins when the same draft
// is edited twice.
type Sessions struct {
	mu     sync.Mutex
	drafts map[string]Quote
}

// NewSessions returns an empty session store.
func NewSessions() *Sessions {
	return &Sessions{drafts: make(map[string]Quote)}
}

// Put stores or replaces the draft under its quote number.
func (s *Sessions) Put(q Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[q.Number] = q
}

// Get returns the draft for number, if one is open.
func (s *Sessions) Get(number string) (Quote, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.drafts[number]
	return q, ok
}

// Discard drops the draft for number. Unknown numbers are a no-op.
func (s *Sessions) Discard(number string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, number)
}
