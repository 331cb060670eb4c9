package robot

import "sync"

// Synced guards a Robot with a mutex so several goroutines can drive it.
type Synced struct {
	mu sync.Mutex
	r  *Robot
}

func NewSynced(opts ...Option) *Synced {
	return &Synced{r: New(opts...)}
}

func (s *Synced) Turn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Turn()
}

func (s *Synced) Move() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Move()
}

func (s *Synced) Backtrack() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Backtrack()
}

func (s *Synced) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.State()
}

func (s *Synced) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Depth()
}
