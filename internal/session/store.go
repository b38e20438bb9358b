// internal/session/store.go
package session

import (
	"sync"
	"time"

	"github.com/brushwork/artmarket-backend/internal/utils"
)

type entry struct {
	userID  uint
	expires time.Time
}

// Store maps opaque tokens to authenticated user ids. Logout removes the
// server-side entry, so a stolen token dies with the session.
type Store struct {
	sessions map[string]entry
	mtx      sync.Mutex
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]entry),
		ttl:      ttl,
	}

	// Sweep expired sessions every minute
	go s.sweep()

	return s
}

func (s *Store) sweep() {
	for {
		time.Sleep(time.Minute)
		now := time.Now()
		s.mtx.Lock()
		for token, e := range s.sessions {
			if now.After(e.expires) {
				delete(s.sessions, token)
			}
		}
		s.mtx.Unlock()
	}
}

// Create opens a session for userID and returns its token.
func (s *Store) Create(userID uint) (string, error) {
	token, err := utils.GenerateSessionToken()
	if err != nil {
		return "", err
	}

	s.mtx.Lock()
	s.sessions[token] = entry{userID: userID, expires: time.Now().Add(s.ttl)}
	s.mtx.Unlock()

	return token, nil
}

// Get resolves a token to a user id; expired tokens are treated as absent.
func (s *Store) Get(token string) (uint, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	e, ok := s.sessions[token]
	if !ok {
		return 0, false
	}
	if time.Now().After(e.expires) {
		delete(s.sessions, token)
		return 0, false
	}
	return e.userID, true
}

// Destroy removes a session. Destroying an unknown token is a no-op.
func (s *Store) Destroy(token string) {
	s.mtx.Lock()
	delete(s.sessions, token)
	s.mtx.Unlock()
}

// DestroyUser removes every session belonging to userID, for account
// deletion.
func (s *Store) DestroyUser(userID uint) {
	s.mtx.Lock()
	for token, e := range s.sessions {
		if e.userID == userID {
			delete(s.sessions, token)
		}
	}
	s.mtx.Unlock()
}
