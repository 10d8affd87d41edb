package interfaces

import domaintypes "preptogether/internal/domain/types"

// TokenStore persists the access token between invocations.
type TokenStore interface {
	SaveToken(token string) error
	// LoadToken returns the stored token and whether one was present.
	LoadToken() (string, bool, error)
	// ClearToken removes the stored token. Clearing an absent token is not an error.
	ClearToken() error
}

// AccountStore persists per-server account profiles.
type AccountStore interface {
	SaveAccountProfile(profile domaintypes.AccountProfile) error
	LoadAccountProfile(serverURL string) (domaintypes.AccountProfile, bool, error)
}
