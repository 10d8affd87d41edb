// Package main runs the in-memory Prepare Together API used by preptogether
// during development and tests. See package devapi for the endpoints.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Responses are JSON. Non-2xx statuses carry {"error": "..."}.
//   - Each request is logged with method, path, status, bytes, duration and
//     request ID.
//   - The default listen address is 127.0.0.1:5000, the address the client
//     uses by default.
//
// Without --jwt-secret a random secret is generated, so tokens do not
// survive a restart.
package main
