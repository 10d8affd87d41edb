// Package session tracks whether the user is logged in.
//
// The access token lives in a domain.TokenStore; the Store only keeps the
// logged-in flag in memory and keeps it in step with the persisted token.
// Views read through Reader and are told about changes via Subscribe. Only
// holders of a Controller can log in or out.
package session
