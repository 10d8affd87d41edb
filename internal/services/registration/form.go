package registration

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/samber/oops"

	"preptogether/internal/api"
	"preptogether/internal/domain"
	"preptogether/internal/errutil"
	"preptogether/internal/services/validation"
)

// State is the submission state of a Form.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Outcome summarises how a Submit call ended.
type Outcome int

const (
	// OutcomeNone is returned alongside re-entrancy errors.
	OutcomeNone Outcome = iota
	// OutcomeInvalid means a local rule failed; see Errors.
	OutcomeInvalid
	// OutcomeEmailInUse means the address is already registered.
	OutcomeEmailInUse
	// OutcomeFailed means the service rejected the request or could not be reached.
	OutcomeFailed
	// OutcomeRegistered means the account was created.
	OutcomeRegistered
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInvalid:
		return "invalid"
	case OutcomeEmailInUse:
		return "email-in-use"
	case OutcomeFailed:
		return "failed"
	case OutcomeRegistered:
		return "registered"
	default:
		return "none"
	}
}

// EmailLookup answers the advisory "is this address taken" question.
type EmailLookup interface {
	EmailExists(ctx context.Context, email string) bool
}

// Registrar creates accounts.
type Registrar interface {
	Register(ctx context.Context, request domain.RegistrationRequest) (domain.RegistrationResult, error)
}

// Form is one registration attempt.
type Form struct {
	emails    EmailLookup
	registrar Registrar
	nav       domain.Navigator
	logger    *slog.Logger

	inFlight atomic.Bool

	mu      sync.Mutex
	draft   Draft
	errs    Errors
	state   State
	message string
}

// New constructs an empty Form. A nil logger discards output.
func New(emails EmailLookup, registrar Registrar, nav domain.Navigator, logger *slog.Logger) *Form {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Form{
		emails:    emails,
		registrar: registrar,
		nav:       nav,
		logger:    logger,
	}
}

// Draft returns a copy of the current draft.
func (f *Form) Draft() Draft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft.clone()
}

// Errors returns a copy of the current field errors.
func (f *Form) Errors() Errors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errs.clone()
}

// State returns the submission state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Message returns the server's confirmation text after a successful submit.
func (f *Form) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

func (f *Form) SetUsername(username string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.username = username
}

func (f *Form) SetPassword(password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.password = password
}

func (f *Form) SetEmail(email string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.email = email
}

// SetRole selects a role. A different role clears the profession and the
// technology selection.
func (f *Form) SetRole(role domain.Role) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.draft.role == role {
		return
	}
	f.draft.role = role
	f.draft.profession = ""
	f.draft.technologies = nil
}

// SetProfession selects a profession. A different profession clears the
// technology selection.
func (f *Form) SetProfession(profession domain.Profession) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.draft.profession == profession {
		return
	}
	f.draft.profession = profession
	f.draft.technologies = nil
}

// SelectTechnology adds tech to the selection. Selecting an already
// selected technology is a no-op.
func (f *Form) SelectTechnology(tech string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if slices.Contains(f.draft.technologies, tech) {
		return nil
	}
	if err := f.checkTechnologyLocked(tech); err != nil {
		return err
	}
	f.draft.technologies = append(f.draft.technologies, tech)
	return nil
}

// DeselectTechnology removes tech from the selection if present.
func (f *Form) DeselectTechnology(tech string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := slices.Index(f.draft.technologies, tech); i >= 0 {
		f.draft.technologies = slices.Delete(f.draft.technologies, i, i+1)
	}
}

// SetTechnologies replaces the selection. Duplicates are dropped. Nothing
// changes if any entry is not offered for the selected profession.
func (f *Form) SetTechnologies(techs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var next []string
	for _, tech := range techs {
		if err := f.checkTechnologyLocked(tech); err != nil {
			return err
		}
		if !slices.Contains(next, tech) {
			next = append(next, tech)
		}
	}
	f.draft.technologies = next
	return nil
}

func (f *Form) checkTechnologyLocked(tech string) error {
	if msg := validation.ValidateTechnology(f.draft.profession, tech); msg != "" {
		return oops.
			Code(CodeUnknownTechnology).
			With("profession", string(f.draft.profession), "technology", tech).
			Errorf("%s", msg)
	}
	return nil
}

// Submit validates the draft and, if every rule passes, registers the
// account. Local rule failures are reported through the Outcome and Errors
// with a nil error; a non-nil error means a service failure or a Submit that
// could not start.
func (f *Form) Submit(ctx context.Context) (Outcome, error) {
	if !f.inFlight.CompareAndSwap(false, true) {
		return OutcomeNone, oops.Code(CodeInFlight).Wrap(ErrSubmissionInFlight)
	}
	defer f.inFlight.Store(false)

	f.mu.Lock()
	if f.state == StateCompleted {
		f.mu.Unlock()
		return OutcomeNone, oops.Code(CodeCompleted).Wrap(ErrAlreadyCompleted)
	}
	f.state = StateSubmitting
	draft := f.draft.clone()
	f.mu.Unlock()

	if !f.checkForm(draft) {
		return f.idle(OutcomeInvalid), nil
	}

	if msg := validation.ValidatePassword(draft.password); msg != "" {
		f.setError(FieldPassword, msg)
		return f.idle(OutcomeInvalid), nil
	}
	f.clearError(FieldPassword)

	if msg := validation.ValidateTechnologyCount(draft.technologies); msg != "" {
		f.setError(FieldTechnologies, msg)
		return f.idle(OutcomeInvalid), nil
	}
	f.clearError(FieldTechnologies)

	if f.emails.EmailExists(ctx, draft.email) {
		f.setError(FieldEmail, MsgEmailInUse)
		return f.idle(OutcomeEmailInUse), nil
	}
	f.clearError(FieldEmail)

	f.clearError(FieldForm)
	result, err := f.registrar.Register(ctx, draft.Request())
	if err != nil {
		if api.StatusCode(err) == http.StatusConflict {
			f.logger.InfoContext(ctx, "registration rejected, email already registered")
			f.setError(FieldEmail, MsgEmailInUse)
			return f.idle(OutcomeEmailInUse), nil
		}
		unreachable := api.IsTransport(err)
		msg := "registration failed"
		if unreachable {
			msg = "registration service unreachable"
		}
		errutil.LogError(ctx, f.logger, slog.LevelError, msg, err)
		f.setError(FieldForm, MsgRegistrationFailed)
		return f.idle(OutcomeFailed), oops.
			Code(CodeFailed).
			With("username", draft.username).
			With("unreachable", unreachable).
			Wrapf(err, "register account")
	}

	f.mu.Lock()
	f.state = StateCompleted
	f.errs.reset()
	f.message = result.Message
	f.mu.Unlock()
	f.logger.InfoContext(ctx, "registration completed", "username", draft.username)

	if err := f.nav.Navigate(ctx, domain.RouteLogin); err != nil {
		return OutcomeRegistered, oops.Wrapf(err, "show login view")
	}
	return OutcomeRegistered, nil
}

// checkForm runs the required-field rules and reports whether all passed.
func (f *Form) checkForm(d Draft) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	ok := true
	apply := func(field Field, msg string) {
		if msg != "" {
			f.errs.set(field, msg)
			ok = false
			return
		}
		f.errs.clear(field)
	}
	apply(FieldUsername, validation.ValidateUsername(d.username))
	apply(FieldRole, validation.ValidateRole(d.role))
	apply(FieldProfession, validation.ValidateProfession(d.profession))

	if msg := validation.ValidateEmail(d.email); msg != "" {
		f.errs.set(FieldEmail, msg)
		ok = false
	} else {
		// An "in use" message belongs to the uniqueness phase.
		f.errs.clearIf(FieldEmail, validation.MsgEmailRequired, validation.MsgEmailInvalid)
	}
	return ok
}

func (f *Form) setError(field Field, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs.set(field, msg)
}

func (f *Form) clearError(field Field) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs.clear(field)
}

func (f *Form) idle(o Outcome) Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateIdle
	return o
}
