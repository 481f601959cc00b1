package session

import "errors"

// Store errors.
var (
	// ErrAuthenticationFailed means the credential check rejected a login.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrSignupFailed means the profile service rejected a signup.
	ErrSignupFailed = errors.New("signup failed")
	// ErrSessionBusy means a login or signup was issued while another one
	// was still in flight. Concurrent lifecycle operations are rejected,
	// never queued.
	ErrSessionBusy = errors.New("another sign-in is already in progress")
)
