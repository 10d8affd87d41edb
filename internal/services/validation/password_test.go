package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"preptogether/internal/services/validation"
)

func TestValidatePassword_Valid(t *testing.T) {
	assert.Empty(t, validation.ValidatePassword("Abcdef1!"))
	assert.Empty(t, validation.ValidatePassword("Zz9~longer-password"))
}

func TestValidatePassword_SingleRuleFailures(t *testing.T) {
	tests := []struct {
		password string
		want     string
	}{
		{"abc", validation.MsgPasswordTooShort},
		{"Abcde1!", validation.MsgPasswordTooShort},
		{"abcdef1!", validation.MsgPasswordNoUpper},
		{"ABCDEF1!", validation.MsgPasswordNoLower},
		{"Abcdefg!", validation.MsgPasswordNoDigit},
		{"Abcdefg1", validation.MsgPasswordNoSpecial},
	}
	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.ValidatePassword(tt.password))
		})
	}
}

func TestValidatePassword_LowestPriorityRuleWins(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     string
	}{
		{"every rule fails", "", validation.MsgPasswordTooShort},
		{"short and lowercase only", "abc", validation.MsgPasswordTooShort},
		{"no upper no digit no special", "abcdefgh", validation.MsgPasswordNoUpper},
		{"no lower no digit", "ABCDEFG!", validation.MsgPasswordNoLower},
		{"no digit no special", "Abcdefgh", validation.MsgPasswordNoDigit},
		{"digits only", "12345678", validation.MsgPasswordNoUpper},
		{"specials only", "!!!!!!!!", validation.MsgPasswordNoUpper},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.ValidatePassword(tt.password))
		})
	}
}

func TestValidatePassword_EverySpecialCharacterCounts(t *testing.T) {
	for _, r := range validation.SpecialCharacters {
		pw := "Abcdef1" + string(r)
		assert.Empty(t, validation.ValidatePassword(pw), "special %q", r)
	}
}

func TestValidatePassword_NonASCIILettersDoNotSatisfyCaseRules(t *testing.T) {
	assert.Equal(t, validation.MsgPasswordNoUpper, validation.ValidatePassword("ÄÖÜabcd1!"))
	assert.Equal(t, validation.MsgPasswordNoLower, validation.ValidatePassword("ABCDEFé1!"))
}

func TestValidatePassword_LengthCountsCharacters(t *testing.T) {
	// Seven characters even though it is longer than seven bytes.
	assert.Equal(t, validation.MsgPasswordTooShort, validation.ValidatePassword("Aé1!éée"))
}
