package uniqueness

import (
	"context"
	"log/slog"

	"preptogether/internal/errutil"
)

// EmailLookup is the slice of the API client the checker needs.
type EmailLookup interface {
	CheckEmail(ctx context.Context, email string) (bool, error)
}

// Checker answers whether an e-mail already belongs to an account, failing open.
type Checker struct {
	api    EmailLookup
	logger *slog.Logger
}

// New returns a Checker backed by api. A nil logger discards diagnostics.
func New(api EmailLookup, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Checker{api: api, logger: logger}
}

// EmailExists reports whether email is already registered. It returns false
// when the service cannot be asked.
func (c *Checker) EmailExists(ctx context.Context, email string) bool {
	exists, err := c.api.CheckEmail(ctx, email)
	if err != nil {
		errutil.LogError(ctx, c.logger, slog.LevelWarn, "email check failed, treating address as unregistered", err)
		return false
	}
	return exists
}
