package validation

import (
	"strings"
	"unicode/utf8"
)

const (
	// MinPasswordLength is the minimum number of characters in a password.
	MinPasswordLength = 8

	// SpecialCharacters is the set a password must draw at least one character from.
	SpecialCharacters = `!@#$%^&*()_+{}[]:;"'<>,.?~\/-`
)

// Password rule messages, in evaluation order.
const (
	MsgPasswordTooShort  = "Password must be at least 8 characters long."
	MsgPasswordNoUpper   = "Password must contain at least one uppercase letter."
	MsgPasswordNoLower   = "Password must contain at least one lowercase letter."
	MsgPasswordNoDigit   = "Password must contain at least one number."
	MsgPasswordNoSpecial = "Password must contain at least one special character."
)

type passwordRule struct {
	message string
	ok      func(string) bool
}

// passwordRules are checked in order; the first failure is reported.
var passwordRules = []passwordRule{
	{MsgPasswordTooShort, func(p string) bool { return utf8.RuneCountInString(p) >= MinPasswordLength }},
	{MsgPasswordNoUpper, func(p string) bool { return strings.ContainsFunc(p, isASCIIUpper) }},
	{MsgPasswordNoLower, func(p string) bool { return strings.ContainsFunc(p, isASCIILower) }},
	{MsgPasswordNoDigit, func(p string) bool { return strings.ContainsFunc(p, isASCIIDigit) }},
	{MsgPasswordNoSpecial, func(p string) bool { return strings.ContainsAny(p, SpecialCharacters) }},
}

// ValidatePassword returns the message of the first password rule that
// password fails, or "" if it satisfies all of them.
func ValidatePassword(password string) string {
	for _, rule := range passwordRules {
		if !rule.ok(password) {
			return rule.message
		}
	}
	return ""
}

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }
func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }
