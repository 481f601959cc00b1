// Package guard decides, per request, whether a view renders or redirects
// based on the current session state.
package guard

import "github.com/arogyapath/portal/internal/session"

// ViewClass is the router-supplied classification of a view.
type ViewClass string

const (
	// PublicOnly views (the auth screen) are for signed-out users.
	PublicOnly ViewClass = "public-only"
	// Protected views (the dashboard and everything behind it) require an
	// authenticated session.
	Protected ViewClass = "protected"
)

// Action is the guard's decision.
type Action int

const (
	// Render serves the requested view unchanged.
	Render Action = iota
	// RedirectToPublic sends the client to the public entry point.
	RedirectToPublic
	// RedirectToProtected sends the client to the protected entry point.
	RedirectToProtected
)

// Evaluate maps a view class and session state to an action. It is a total
// function with no side effects: protected views while not authenticated
// redirect to the public entry, public-only views while authenticated
// redirect to the protected entry, and everything else renders. An
// authenticating session counts as not authenticated.
func Evaluate(class ViewClass, state session.State) Action {
	switch class {
	case Protected:
		if state != session.StateAuthenticated {
			return RedirectToPublic
		}
	case PublicOnly:
		if state == session.StateAuthenticated {
			return RedirectToProtected
		}
	}
	return Render
}
