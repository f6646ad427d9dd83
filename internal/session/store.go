// Package session holds the client's proof of authentication: a bearer
// token plus a cached snapshot of the signed-in user. Both live in a single
// local key-value slot and are always written and cleared together.
package session

import (
	"sync"

	"github.com/ABHISHEK0S1INGH/UserDashboard/internal/models"
)

// Store is the session slot. Reads are synchronous and never fail; writes
// either apply both fields or neither.
type Store interface {
	Token() string
	User() *models.User
	IsAuthenticated() bool
	Set(token string, user *models.User) error
	Clear() error
}

// MemoryStore keeps the session in memory only. Used by tests and as a
// fallback when no persistent path is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	user  *models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryStore) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *MemoryStore) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *MemoryStore) Set(token string, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if user != nil {
		u := *user
		s.user = &u
	} else {
		s.user = nil
	}
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	return nil
}
