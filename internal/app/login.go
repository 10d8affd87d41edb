package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/samber/oops"

	"preptogether/internal/api"
	"preptogether/internal/domain"
	"preptogether/internal/errutil"
)

// CodeInvalidCredentials marks a login the service rejected.
const CodeInvalidCredentials = "INVALID_CREDENTIALS"

// ErrInvalidCredentials is the login failure shown to the user.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Login exchanges credentials for an access token, starts the session,
// remembers the address for this server and shows the profile.
func (w *Wire) Login(ctx context.Context, email, password string) error {
	if err := w.Gate.Guard(domain.RouteLogin); err != nil {
		return err
	}

	token, err := w.API.Login(ctx, email, password)
	if err != nil {
		if api.StatusCode(err) == http.StatusUnauthorized {
			return oops.Code(CodeInvalidCredentials).Wrap(ErrInvalidCredentials)
		}
		return err
	}
	if err := w.Session.Login(token); err != nil {
		return err
	}

	account := domain.AccountProfile{ServerURL: w.API.BaseURL(), Email: email}
	if err := w.Accounts.SaveAccountProfile(account); err != nil {
		errutil.LogError(ctx, w.Logger, slog.LevelWarn, "remember account failed", err)
	}
	w.Logger.InfoContext(ctx, "logged in")

	return w.Router.Navigate(ctx, domain.RouteProfile)
}

// RememberedEmail returns the address last used to log in to the configured server.
func (w *Wire) RememberedEmail() (string, bool) {
	account, ok, err := w.Accounts.LoadAccountProfile(w.API.BaseURL())
	if err != nil {
		errutil.LogError(context.Background(), w.Logger, slog.LevelWarn, "load account failed", err)
		return "", false
	}
	return account.Email, ok && account.Email != ""
}

// Logout ends the session and shows the home view.
func (w *Wire) Logout(ctx context.Context) error {
	return w.Gate.Logout(ctx)
}
