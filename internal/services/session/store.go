package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/samber/oops"

	"preptogether/internal/domain"
)

// Error codes returned by the Store.
const (
	CodeEmptyToken    = "SESSION_EMPTY_TOKEN"
	CodePersistFailed = "SESSION_PERSIST_FAILED"
	CodeClearFailed   = "SESSION_CLEAR_FAILED"
	CodeLoadFailed    = "SESSION_LOAD_FAILED"
)

// Reader is the read side of the session.
type Reader interface {
	IsLoggedIn() bool
	Token() (string, error)
	Subscribe(fn func(loggedIn bool)) (unsubscribe func())
}

// Controller changes the session.
type Controller interface {
	Reader
	Login(token string) error
	Logout() error
}

// TokenClaims is what the client can tell about its token without the
// server's key.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token carried an expiry that has passed.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// Store is the session backed by a persisted token.
type Store struct {
	tokens domain.TokenStore
	logger *slog.Logger

	mu       sync.Mutex
	loggedIn bool
	nextSub  int
	subs     map[int]func(bool)
}

var _ Controller = (*Store)(nil)

// Open loads the persisted token and derives the initial flag from it.
func Open(tokens domain.TokenStore, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	_, ok, err := tokens.LoadToken()
	if err != nil {
		return nil, oops.Code(CodeLoadFailed).Wrapf(err, "load access token")
	}
	return &Store{
		tokens:   tokens,
		logger:   logger,
		loggedIn: ok,
		subs:     make(map[int]func(bool)),
	}, nil
}

// IsLoggedIn reports the in-memory flag.
func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

// Token returns the persisted token, or "" when there is none.
func (s *Store) Token() (string, error) {
	tok, _, err := s.tokens.LoadToken()
	if err != nil {
		return "", oops.Code(CodeLoadFailed).Wrapf(err, "load access token")
	}
	return tok, nil
}

// Login persists token and marks the session as logged in.
func (s *Store) Login(token string) error {
	if token == "" {
		return oops.Code(CodeEmptyToken).Errorf("access token is empty")
	}
	if err := s.tokens.SaveToken(token); err != nil {
		return oops.Code(CodePersistFailed).Wrapf(err, "save access token")
	}
	s.set(true)
	s.logger.Debug("session logged in")
	return nil
}

// Logout removes the persisted token and clears the flag. If the token
// cannot be removed the flag is re-derived from what is still persisted, so
// it never reports logged out while a token remains on disk.
func (s *Store) Logout() error {
	if err := s.tokens.ClearToken(); err != nil {
		_, ok, loadErr := s.tokens.LoadToken()
		s.set(ok || loadErr != nil)
		return oops.Code(CodeClearFailed).Wrapf(err, "clear access token")
	}
	s.set(false)
	s.logger.Debug("session logged out")
	return nil
}

// Subscribe registers fn to be called with the new flag whenever it changes.
func (s *Store) Subscribe(fn func(loggedIn bool)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Claims decodes the stored token's payload without verifying it. The
// second result is false when there is no token or it is not a JWT.
func (s *Store) Claims() (TokenClaims, bool) {
	tok, err := s.Token()
	if err != nil || tok == "" {
		return TokenClaims{}, false
	}
	return ParseClaims(tok)
}

// ParseClaims decodes the subject and expiry of a JWT without checking its
// signature.
func ParseClaims(token string) (TokenClaims, bool) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenClaims{}, false
	}
	out := TokenClaims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, true
}

func (s *Store) set(loggedIn bool) {
	s.mu.Lock()
	changed := s.loggedIn != loggedIn
	s.loggedIn = loggedIn
	var fns []func(bool)
	if changed {
		for _, fn := range s.subs {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(loggedIn)
	}
}
