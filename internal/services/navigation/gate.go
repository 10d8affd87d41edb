package navigation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/samber/oops"

	"preptogether/internal/domain"
	"preptogether/internal/errutil"
	"preptogether/internal/services/session"
)

// Error codes returned by Guard.
const (
	CodeLoginRequired   = "LOGIN_REQUIRED"
	CodeAlreadyLoggedIn = "ALREADY_LOGGED_IN"
)

var (
	// ErrLoginRequired means the view needs a logged-in session.
	ErrLoginRequired = errors.New("you need to log in first")
	// ErrAlreadyLoggedIn means the view is only for anonymous users.
	ErrAlreadyLoggedIn = errors.New("you are already logged in")
)

// Action is one entry of the navigation bar.
type Action struct {
	Label string
	// Route is empty for the logout action.
	Route domain.Route
}

// IsLogout reports whether the action ends the session instead of opening a view.
func (a Action) IsLogout() bool { return a.Route == "" }

var (
	actionHome     = Action{Label: "Home", Route: domain.RouteHome}
	actionRegister = Action{Label: "Register", Route: domain.RouteRegister}
	actionLogin    = Action{Label: "Login", Route: domain.RouteLogin}
	actionProfile  = Action{Label: "Profile", Route: domain.RouteProfile}
	actionLogout   = Action{Label: "Logout"}
)

// Actions lists the entries available for the given session state.
func Actions(loggedIn bool) []Action {
	if loggedIn {
		return []Action{actionHome, actionProfile, actionLogout}
	}
	return []Action{actionHome, actionRegister, actionLogin}
}

// Gate binds the navigation bar to a session.
type Gate struct {
	tokens  domain.TokenStore
	session session.Controller
	nav     domain.Navigator
	logger  *slog.Logger
}

// New constructs a Gate. A nil logger discards output.
func New(tokens domain.TokenStore, sess session.Controller, nav domain.Navigator, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Gate{tokens: tokens, session: sess, nav: nav, logger: logger}
}

// Actions lists the entries for the current session.
func (g *Gate) Actions() []Action {
	return Actions(g.session.IsLoggedIn())
}

// Render writes the navigation bar as a single line.
func (g *Gate) Render(w io.Writer) error {
	actions := g.Actions()
	labels := make([]string, len(actions))
	for i, a := range actions {
		labels[i] = a.Label
	}
	_, err := fmt.Fprintf(w, "[ %s ]\n", strings.Join(labels, " | "))
	return err
}

// Guard reports whether route may be opened in the current session.
func (g *Gate) Guard(route domain.Route) error {
	loggedIn := g.session.IsLoggedIn()
	switch route {
	case domain.RouteProfile:
		if !loggedIn {
			return oops.Code(CodeLoginRequired).With("route", string(route)).Wrap(ErrLoginRequired)
		}
	case domain.RouteRegister, domain.RouteLogin:
		if loggedIn {
			return oops.Code(CodeAlreadyLoggedIn).With("route", string(route)).Wrap(ErrAlreadyLoggedIn)
		}
	}
	return nil
}

// Logout removes the persisted token, clears the session and returns to
// the home view, in that order. A failure at any step stops the sequence so
// the home view is never shown while a token is still stored.
func (g *Gate) Logout(ctx context.Context) error {
	if err := g.tokens.ClearToken(); err != nil {
		errutil.LogError(ctx, g.logger, slog.LevelWarn, "clear access token failed", err)
		// Re-sync the session flag with the token that is still stored.
		_ = g.session.Logout()
		return oops.Code(session.CodeClearFailed).Wrapf(err, "clear access token")
	}
	if err := g.session.Logout(); err != nil {
		return err
	}
	if err := g.nav.Navigate(ctx, domain.RouteHome); err != nil {
		return oops.Wrapf(err, "show home view")
	}
	g.logger.InfoContext(ctx, "logged out")
	return nil
}
