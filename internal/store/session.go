package store

import (
	"sync"

	"opticart/internal/domain"
	"opticart/internal/state"
)

// Session holds the current user and bearer token, persisted under
// auth-storage so a restart does not log the user out. It implements
// backend.TokenSource, which makes it the leaf every other store hangs off.
type Session struct {
	mu      sync.RWMutex
	cur     domain.Session
	persist Persister
}

func NewSession(p Persister) *Session {
	s := &Session{persist: p}
	if p != nil {
		_, _ = p.Get(state.AuthKey, &s.cur)
	}
	return s
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Token
}

func (s *Session) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.LoggedIn()
}

func (s *Session) Login(token string, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = domain.Session{Token: token, User: u}
	if s.persist == nil {
		return nil
	}
	return s.persist.Put(state.AuthKey, s.cur)
}

// SetUser refreshes the cached user record after a profile update; the
// token is untouched.
func (s *Session) SetUser(u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur.User = u
	if s.persist == nil {
		return nil
	}
	return s.persist.Put(state.AuthKey, s.cur)
}

func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = domain.Session{}
	if s.persist == nil {
		return nil
	}
	return s.persist.Delete(state.AuthKey)
}
