package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"preptogether/internal/domain"
)

// TokenFilename is the file, relative to the home directory, holding the access token.
const TokenFilename = "access_token"

// TokenFileStore persists the access token as a single 0600 file.
type TokenFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewTokenFileStore returns a TokenFileStore rooted at dir.
func NewTokenFileStore(dir string) *TokenFileStore {
	return &TokenFileStore{dir: dir}
}

// Path returns the location of the token file.
func (s *TokenFileStore) Path() string {
	return filepath.Join(s.dir, TokenFilename)
}

// SaveToken replaces the stored token.
func (s *TokenFileStore) SaveToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeFile(s.Path(), []byte(token), 0o600)
}

// LoadToken returns the stored token and whether one was present.
// A file holding only whitespace counts as absent.
func (s *TokenFileStore) LoadToken() (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.Path())
	if err != nil {
		return "", false, err
	}
	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", false, nil
	}
	return token, true, nil
}

// ClearToken deletes the token file; a missing file is not an error.
func (s *TokenFileStore) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Compile-time assertion that TokenFileStore implements domain.TokenStore.
var _ domain.TokenStore = (*TokenFileStore)(nil)
