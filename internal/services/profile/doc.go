// Package profile loads and shows the logged-in user's profile.
package profile
