// Package navigation decides which views are reachable for the current
// session and performs logout.
package navigation
