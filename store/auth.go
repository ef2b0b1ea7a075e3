package store

import (
	"encoding/json"
	"sync"

	"github.com/HA2345567/buttonhaus/models"
)

const authNamespace = "buttonhaus-auth"

// AuthStore keeps mock-auth sessions, keyed by user id.
type AuthStore struct {
	mu       sync.RWMutex
	sessions map[string]models.User
	notify   func()
}

func NewAuthStore() *AuthStore {
	return &AuthStore{sessions: make(map[string]models.User)}
}

func (s *AuthStore) OnChange(fn func()) { s.notify = fn }

func (s *AuthStore) changed() {
	if s.notify != nil {
		s.notify()
	}
}

func (s *AuthStore) Put(user models.User) {
	s.mu.Lock()
	s.sessions[user.UID] = user
	s.mu.Unlock()
	s.changed()
}

func (s *AuthStore) Get(uid string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.sessions[uid]
	return user, ok
}

func (s *AuthStore) Delete(uid string) {
	s.mu.Lock()
	delete(s.sessions, uid)
	s.mu.Unlock()
	s.changed()
}

func (s *AuthStore) Namespace() string { return authNamespace }

func (s *AuthStore) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(s.sessions)
}

func (s *AuthStore) Restore(data []byte) error {
	sessions := make(map[string]models.User)
	if err := json.Unmarshal(data, &sessions); err != nil {
		return err
	}
	s.mu.Lock()
	s.sessions = sessions
	s.mu.Unlock()
	return nil
}
