// Package domain contains core concepts of the chat system.
// This file defines the searchable user profile.
package domain

// Profile is the public directory entry of a user. It is fetched
// out-of-band from the profile store and treated as opaque by the
// projections.
type Profile struct {
	ID       string
	Username string
	Email    string
}
