package shell

import "sync"

// scope collects release callbacks for resources acquired during one mount
type scope struct {
	mu       sync.Mutex
	releases []func()
	closed   bool
}

// add registers release. It returns false when the scope is already closed,
// in which case the caller still owns the resource.
func (s *scope) add(release func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	s.releases = append(s.releases, release)
	return true
}

// close runs every registered release once, most recent first
func (s *scope) close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	releases := s.releases
	s.releases = nil
	s.mu.Unlock()

	for i := len(releases) - 1; i >= 0; i-- {
		releases[i]()
	}
}
