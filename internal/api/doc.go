// Package api provides an HTTP implementation of the domain.APIClient
// interface used by preptogether.
//
// The Prepare Together service owns accounts and matches job seekers with
// mentors. This package offers a concrete client for the endpoints the CLI
// needs:
//   - Checking whether an e-mail address is already registered.
//   - Registering a new account.
//   - Logging in to obtain an access token.
//   - Fetching the profile of the logged-in user.
//
// All requests are JSON over HTTP, accept a context for cancellation and
// deadlines, and carry an X-Request-ID header. Non-2xx statuses are returned
// as oops errors with code API_STATUS and the method, path and status in their
// context; StatusCode recovers the status from such an error.
package api
