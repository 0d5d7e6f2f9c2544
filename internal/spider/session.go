package spider

import "sync"

// Session tracks crawl progress for a single run: the set of product URLs
// already followed and the number of items emitted so far. It replaces
// what would otherwise be ambient globals so handlers stay functions of
// (page, session).
type Session struct {
	mu       sync.Mutex
	seen     map[string]struct{}
	emitted  int
	maxItems int
}

// NewSession creates a session that stops emitting after maxItems records.
func NewSession(maxItems int) *Session {
	return &Session{
		seen:     make(map[string]struct{}),
		maxItems: maxItems,
	}
}

// MarkSeen records a product URL, returning false if it was seen before.
func (s *Session) MarkSeen(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[url]; ok {
		return false
	}
	s.seen[url] = struct{}{}
	return true
}

// SeenCount returns how many product URLs have been followed.
func (s *Session) SeenCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seen)
}

// ReachedMax reports whether the emitted-item cap has been hit.
func (s *Session) ReachedMax() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.emitted >= s.maxItems
}

// RecordEmit increments the emitted-item counter.
func (s *Session) RecordEmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emitted++
}

// Emitted returns the number of items emitted so far.
func (s *Session) Emitted() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.emitted
}
