package devapi

import (
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"preptogether/internal/domain"
)

// CodeEmailTaken marks a registration for an address that already exists.
const CodeEmailTaken = "DEVAPI_EMAIL_TAKEN"

type user struct {
	ID           ulid.ULID
	Username     string
	PasswordHash []byte
	Email        string
	Role         domain.Role
	Profession   domain.Profession
	Technologies []string
}

// memoryStore keeps users keyed by normalised e-mail.
type memoryStore struct {
	mu    sync.RWMutex
	users map[string]user
}

func newMemoryStore() *memoryStore {
	return &memoryStore{users: make(map[string]user)}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *memoryStore) exists(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[emailKey(email)]
	return ok
}

func (s *memoryStore) get(email string) (user, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[emailKey(email)]
	return u, ok
}

func (s *memoryStore) add(u user) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := emailKey(u.Email)
	if _, ok := s.users[key]; ok {
		return oops.Code(CodeEmailTaken).Errorf("email already registered")
	}
	u.ID = ulid.Make()
	s.users[key] = u
	return nil
}

func (s *memoryStore) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
