// Package uniqueness asks the service whether an e-mail is already registered.
//
// The answer is a hint shown before submitting a registration. Any failure to
// obtain it (transport error, non-2xx status, unreadable body) is logged and
// reported as "not registered"; the registration endpoint remains the
// authority on duplicate accounts.
package uniqueness
