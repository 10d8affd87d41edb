// Package registration drives the registration form from draft to submitted account.
//
// A Form owns one Draft and its field-scoped Errors. Field setters keep the
// draft consistent (changing the role or the profession empties the
// technology selection). Submit runs the checks in a fixed order and stops at
// the first failing phase:
//
//  1. required fields and e-mail syntax,
//  2. password strength,
//  3. technology count,
//  4. e-mail uniqueness hint,
//  5. POST /register.
//
// Each phase clears only its own error slot when it passes. On success the
// form is Completed and the navigator is sent to the login view; on a service
// failure the form returns to Idle with the draft untouched.
package registration
