package validation

import (
	"net/mail"
	"strings"

	"preptogether/internal/catalog"
	"preptogether/internal/domain"
)

// MinTechnologies is the smallest technology selection accepted.
const MinTechnologies = 3

// Field rule messages.
const (
	MsgTooFewTechnologies = "Please select at least 3 technologies."
	MsgUnknownTechnology  = "Please choose technologies listed for the selected profession."
	MsgUsernameRequired   = "Username is required."
	MsgEmailRequired      = "Email is required."
	MsgEmailInvalid       = "Please enter a valid email address."
	MsgRoleRequired       = "Please select a role."
	MsgProfessionRequired = "Please select a profession."
)

// ValidateTechnologyCount reports whether enough technologies are selected.
func ValidateTechnologyCount(selected []string) string {
	if len(selected) < MinTechnologies {
		return MsgTooFewTechnologies
	}
	return ""
}

// ValidateTechnology reports whether tech may be selected for profession.
func ValidateTechnology(profession domain.Profession, tech string) string {
	if !catalog.HasTechnology(profession, tech) {
		return MsgUnknownTechnology
	}
	return ""
}

// ValidateUsername requires a non-blank username.
func ValidateUsername(username string) string {
	if strings.TrimSpace(username) == "" {
		return MsgUsernameRequired
	}
	return ""
}

// ValidateEmail requires a bare, syntactically valid address such as
// "bob@example.com". Display names and angle brackets are rejected.
func ValidateEmail(email string) string {
	if strings.TrimSpace(email) == "" {
		return MsgEmailRequired
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Name != "" || addr.Address != email {
		return MsgEmailInvalid
	}
	return ""
}

// ValidateRole requires one of the supported roles.
func ValidateRole(role domain.Role) string {
	if !role.Valid() {
		return MsgRoleRequired
	}
	return ""
}

// ValidateProfession requires a catalog profession.
func ValidateProfession(profession domain.Profession) string {
	if !catalog.Has(profession) {
		return MsgProfessionRequired
	}
	return ""
}
