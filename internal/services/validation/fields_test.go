package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"preptogether/internal/domain"
	"preptogether/internal/services/validation"
)

func TestValidateTechnologyCount(t *testing.T) {
	assert.Equal(t, validation.MsgTooFewTechnologies, validation.ValidateTechnologyCount(nil))
	assert.Equal(t, validation.MsgTooFewTechnologies, validation.ValidateTechnologyCount([]string{"Git", "JIRA"}))
	assert.Empty(t, validation.ValidateTechnologyCount([]string{"Git", "JIRA", "Selenium"}))
	assert.Empty(t, validation.ValidateTechnologyCount([]string{"Git", "JIRA", "Selenium", "Postman"}))
}

func TestValidateTechnology(t *testing.T) {
	assert.Empty(t, validation.ValidateTechnology("QA", "Selenium"))
	assert.Equal(t, validation.MsgUnknownTechnology, validation.ValidateTechnology("QA", "Pandas"))
	assert.Equal(t, validation.MsgUnknownTechnology, validation.ValidateTechnology("", "Selenium"))
}

func TestValidateUsername(t *testing.T) {
	assert.Empty(t, validation.ValidateUsername("bob"))
	assert.Equal(t, validation.MsgUsernameRequired, validation.ValidateUsername(""))
	assert.Equal(t, validation.MsgUsernameRequired, validation.ValidateUsername("   "))
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"bob@example.com", ""},
		{"first.last+tag@sub.example.org", ""},
		{"", validation.MsgEmailRequired},
		{"  ", validation.MsgEmailRequired},
		{"bob", validation.MsgEmailInvalid},
		{"bob@", validation.MsgEmailInvalid},
		{"@example.com", validation.MsgEmailInvalid},
		{"Bob <bob@example.com>", validation.MsgEmailInvalid},
		{" bob@example.com", validation.MsgEmailInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.ValidateEmail(tt.email))
		})
	}
}

func TestValidateRoleAndProfession(t *testing.T) {
	assert.Empty(t, validation.ValidateRole(domain.RoleJobSeeker))
	assert.Empty(t, validation.ValidateRole(domain.RoleInterviewer))
	assert.Equal(t, validation.MsgRoleRequired, validation.ValidateRole(""))
	assert.Equal(t, validation.MsgRoleRequired, validation.ValidateRole("admin"))

	assert.Empty(t, validation.ValidateProfession("QA"))
	assert.Equal(t, validation.MsgProfessionRequired, validation.ValidateProfession(""))
	assert.Equal(t, validation.MsgProfessionRequired, validation.ValidateProfession("Astronaut"))
}
