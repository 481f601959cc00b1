package guard

import (
	"net/http"

	"github.com/arogyapath/portal/internal/pkg/httputil"
	"github.com/arogyapath/portal/internal/session"
)

// Guard adapts Evaluate to chi middleware. The decision is taken against a
// live store snapshot on every request, so a state change is visible to the
// very next evaluation.
type Guard struct {
	store          *session.Store
	publicEntry    string
	protectedEntry string
}

// New creates a Guard redirecting to the given entry points.
func New(store *session.Store, publicEntry, protectedEntry string) *Guard {
	return &Guard{
		store:          store,
		publicEntry:    publicEntry,
		protectedEntry: protectedEntry,
	}
}

// Protected guards views that require an authenticated session. On render,
// the current identity is placed in the request context.
func (g *Guard) Protected(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snap := g.store.Snapshot()
		if Evaluate(Protected, snap.State) == RedirectToPublic {
			http.Redirect(w, r, g.publicEntry, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r.WithContext(httputil.WithIdentity(r.Context(), snap.Identity)))
	})
}

// Public guards views meant only for signed-out users.
func (g *Guard) Public(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Evaluate(PublicOnly, g.store.State()) == RedirectToProtected {
			http.Redirect(w, r, g.protectedEntry, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
