// Package validation holds the credential and form rules applied before a
// registration is sent.
//
// Every rule is a pure function returning the user-facing message for the
// first failed check, or "" when the input passes.
package validation
