package profile

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/samber/oops"

	"preptogether/internal/domain"
	"preptogether/internal/errutil"
	"preptogether/internal/services/navigation"
	"preptogether/internal/services/session"
)

// MsgFetchFailed is shown when the profile cannot be loaded.
const MsgFetchFailed = "Failed to fetch user data. Please try again."

// Status is the load state of the view.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusLoaded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Snapshot is the state the view renders.
type Snapshot struct {
	Status  Status
	Profile domain.Profile
	Error   string
}

// Fetcher loads a profile with a bearer token.
type Fetcher interface {
	FetchProfile(ctx context.Context, token string) (domain.Profile, error)
}

// View holds the profile page state. Results of a load that finishes after
// Deactivate are dropped.
type View struct {
	api     Fetcher
	session session.Reader
	logger  *slog.Logger

	mu   sync.Mutex
	gen  uint64
	snap Snapshot
}

// New constructs an idle View. A nil logger discards output.
func New(api Fetcher, sess session.Reader, logger *slog.Logger) *View {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &View{api: api, session: sess, logger: logger}
}

// Snapshot returns the current state.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.snap
	s.Profile.Technologies = append([]string(nil), s.Profile.Technologies...)
	return s
}

// Activate loads the profile. It blocks until the request resolves.
func (v *View) Activate(ctx context.Context) error {
	token, err := v.session.Token()
	if err != nil {
		return err
	}
	if token == "" {
		return oops.Code(navigation.CodeLoginRequired).Wrap(navigation.ErrLoginRequired)
	}

	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.snap = Snapshot{Status: StatusLoading}
	v.mu.Unlock()

	p, err := v.api.FetchProfile(ctx, token)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.gen != gen {
		v.logger.DebugContext(ctx, "discarding profile result for inactive view")
		return nil
	}
	if err != nil {
		errutil.LogError(ctx, v.logger, slog.LevelError, "fetch profile failed", err)
		v.snap = Snapshot{Status: StatusFailed, Error: MsgFetchFailed}
		return oops.Wrapf(err, "fetch profile")
	}
	v.snap = Snapshot{Status: StatusLoaded, Profile: p}
	return nil
}

// Deactivate returns the view to idle and drops any load in progress.
func (v *View) Deactivate() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.gen++
	v.snap = Snapshot{}
}

// Render writes the page for the current state.
func (v *View) Render(w io.Writer) error {
	s := v.Snapshot()
	var b strings.Builder
	b.WriteString("Profile\n")
	switch s.Status {
	case StatusFailed:
		b.WriteString(s.Error + "\n")
	case StatusLoaded:
		p := s.Profile
		fmt.Fprintf(&b, "Username: %s\n", p.Username)
		fmt.Fprintf(&b, "Email: %s\n", p.Email)
		fmt.Fprintf(&b, "Role: %s\n", p.Role)
		fmt.Fprintf(&b, "Profession: %s\n", p.Profession)
		fmt.Fprintf(&b, "Technologies: %s\n", strings.Join(p.Technologies, ", "))
	default:
		b.WriteString("Loading...\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
