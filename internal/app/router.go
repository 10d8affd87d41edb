package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/samber/oops"

	"preptogether/internal/domain"
	"preptogether/internal/services/navigation"
	"preptogether/internal/services/profile"
)

const homeText = `Welcome to Prepare Together

Prepare Together is an app designed to connect job seekers with volunteer
mentors in the industry. After creating a profile, each job seeker is matched
with a volunteer mentor based on profile compatibility.
`

// Router shows views on a terminal. Every view is preceded by the
// navigation bar for the current session.
type Router struct {
	out     io.Writer
	logger  *slog.Logger
	gate    *navigation.Gate
	profile *profile.View

	current domain.Route
}

var _ domain.Navigator = (*Router)(nil)

// Current returns the last route shown.
func (r *Router) Current() domain.Route { return r.current }

// sessionChanged drops the loaded profile as soon as the session ends,
// whichever path ended it.
func (r *Router) sessionChanged(loggedIn bool) {
	if !loggedIn {
		r.profile.Deactivate()
	}
}

// Navigate renders route after checking that the session may open it.
func (r *Router) Navigate(ctx context.Context, route domain.Route) error {
	if err := r.gate.Guard(route); err != nil {
		return err
	}
	if r.current == domain.RouteProfile && route != domain.RouteProfile {
		r.profile.Deactivate()
	}
	r.current = route
	r.logger.DebugContext(ctx, "navigate", "route", string(route))

	if err := r.gate.Render(r.out); err != nil {
		return oops.Wrapf(err, "render navigation")
	}
	switch route {
	case domain.RouteHome:
		_, err := io.WriteString(r.out, homeText)
		return err
	case domain.RouteRegister:
		_, err := io.WriteString(r.out, "Register\n")
		return err
	case domain.RouteLogin:
		_, err := io.WriteString(r.out, "Login\nRun `preptogether login` to sign in.\n")
		return err
	case domain.RouteProfile:
		loadErr := r.profile.Activate(ctx)
		if err := r.profile.Render(r.out); err != nil {
			return err
		}
		return loadErr
	default:
		return oops.With("route", string(route)).Errorf("unknown route %q", route)
	}
}
