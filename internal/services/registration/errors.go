package registration

import (
	"errors"
	"maps"
)

// Field names an error slot of the form.
type Field string

// Error slots. FieldForm holds page-level failures that belong to no input.
const (
	FieldUsername     Field = "username"
	FieldPassword     Field = "password"
	FieldEmail        Field = "email"
	FieldRole         Field = "role"
	FieldProfession   Field = "profession"
	FieldTechnologies Field = "technologies"
	FieldForm         Field = "form"
)

// Fields lists every slot in display order.
func Fields() []Field {
	return []Field{
		FieldUsername, FieldPassword, FieldEmail, FieldRole,
		FieldProfession, FieldTechnologies, FieldForm,
	}
}

// Messages shown by the orchestrator itself.
const (
	MsgEmailInUse         = "Email is already in use."
	MsgRegistrationFailed = "Registration failed. Please try again."
)

// Errors holds at most one message per field. The zero value has no errors.
type Errors struct {
	m map[Field]string
}

// Get returns the message for f, or "".
func (e Errors) Get(f Field) string { return e.m[f] }

// Has reports whether f carries a message.
func (e Errors) Has(f Field) bool { return e.m[f] != "" }

// Empty reports whether no field carries a message.
func (e Errors) Empty() bool { return len(e.m) == 0 }

// Each calls fn for every field with a message, in display order.
func (e Errors) Each(fn func(Field, string)) {
	for _, f := range Fields() {
		if msg := e.m[f]; msg != "" {
			fn(f, msg)
		}
	}
}

func (e *Errors) set(f Field, msg string) {
	if msg == "" {
		e.clear(f)
		return
	}
	if e.m == nil {
		e.m = make(map[Field]string)
	}
	e.m[f] = msg
}

func (e *Errors) clear(f Field) { delete(e.m, f) }

// clearIf removes the message for f only if it is one of msgs.
func (e *Errors) clearIf(f Field, msgs ...string) {
	cur := e.m[f]
	for _, m := range msgs {
		if cur == m {
			e.clear(f)
			return
		}
	}
}

func (e *Errors) reset() { e.m = nil }

func (e Errors) clone() Errors { return Errors{m: maps.Clone(e.m)} }

// Error codes for failures returned by Form.
const (
	CodeInFlight  = "REGISTRATION_IN_FLIGHT"
	CodeCompleted = "REGISTRATION_COMPLETED"
	CodeFailed    = "REGISTRATION_FAILED"
)

// Sentinels for errors.Is. Submit returns them wrapped with their code.
var (
	// ErrSubmissionInFlight means a previous Submit has not resolved.
	ErrSubmissionInFlight = errors.New("a registration is already being submitted")

	// ErrAlreadyCompleted means the form already created its account.
	ErrAlreadyCompleted = errors.New("registration already completed")
)

// CodeUnknownTechnology marks a technology that is not offered for the
// selected profession.
const CodeUnknownTechnology = "REGISTRATION_UNKNOWN_TECHNOLOGY"
