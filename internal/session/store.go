// Package session owns the current portal identity: who is signed in,
// the lifecycle of signing in and out, and the single durable record that
// survives restarts.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/arogyapath/portal/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// State is the session lifecycle state.
type State string

const (
	StateAnonymous      State = "anonymous"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
)

// Snapshot is a point-in-time read of the session.
type Snapshot struct {
	State    State            `json:"state"`
	Identity *domain.Identity `json:"identity,omitempty"`
}

// Credentials are the inputs to a login check.
type Credentials struct {
	Email    string
	Password string
	Role     domain.Role
}

// Profile are the inputs to a signup. Field-level validation (required
// fields, password confirmation) is the caller's job and must happen before
// the store is invoked.
type Profile struct {
	FullName string
	Email    string
	Password string
	Phone    string
	Role     domain.Role
}

// CredentialChecker is the external identity provider boundary. Both calls
// resolve to success or an error; the store does not interpret the error
// beyond treating it as a rejection.
type CredentialChecker interface {
	Authenticate(ctx context.Context, creds Credentials) error
	Register(ctx context.Context, profile Profile) error
}

// RecordStore persists the single session record. Save must replace the
// whole record atomically.
type RecordStore interface {
	Load() (*domain.Identity, error)
	Save(id *domain.Identity) error
	Clear() error
}

// Store is the single authority for the current identity.
//
// Lifecycle policy, where the spec of the original portal left it open:
//   - A Login or Signup issued while another is in flight is rejected with
//     ErrSessionBusy.
//   - A Login or Signup issued while already authenticated replaces the
//     current identity; if the new attempt fails the session ends up
//     anonymous, not restored to the previous identity.
//   - Logout during an in-flight Login/Signup is a no-op; the in-flight
//     operation owns the transition out of authenticating.
type Store struct {
	checker CredentialChecker
	records RecordStore

	mu       sync.Mutex
	state    State
	identity *domain.Identity
}

// NewStore creates a session store in the anonymous state.
func NewStore(checker CredentialChecker, records RecordStore) *Store {
	return &Store{
		checker: checker,
		records: records,
		state:   StateAnonymous,
	}
}

// Login establishes a new identity from email and role after the external
// credential check succeeds. The display name is derived from the email's
// local part, capitalized.
func (s *Store) Login(ctx context.Context, email, password string, role domain.Role) (*domain.Identity, error) {
	if err := s.begin(); err != nil {
		recordOperation("login", "busy")
		return nil, err
	}

	if err := s.checker.Authenticate(ctx, Credentials{Email: email, Password: password, Role: role}); err != nil {
		s.fail()
		recordOperation("login", "failed")
		return nil, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
	}

	id := &domain.Identity{
		ID:          uuid.NewString(),
		Email:       email,
		DisplayName: deriveDisplayName(email),
		Role:        role,
	}

	recordOperation("login", "ok")
	return s.complete(id), nil
}

// Signup establishes a new identity directly from the supplied profile.
func (s *Store) Signup(ctx context.Context, profile Profile) (*domain.Identity, error) {
	if err := s.begin(); err != nil {
		recordOperation("signup", "busy")
		return nil, err
	}

	if err := s.checker.Register(ctx, profile); err != nil {
		s.fail()
		recordOperation("signup", "failed")
		return nil, fmt.Errorf("%w: %v", ErrSignupFailed, err)
	}

	id := &domain.Identity{
		ID:          uuid.NewString(),
		Email:       profile.Email,
		DisplayName: profile.FullName,
		Role:        profile.Role,
		Phone:       profile.Phone,
	}

	recordOperation("signup", "ok")
	return s.complete(id), nil
}

// Logout clears the identity and removes the persisted record. It is
// idempotent; calling it while anonymous is a no-op.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateAuthenticating {
		return
	}
	if s.state == StateAnonymous {
		return
	}

	s.identity = nil
	s.state = StateAnonymous
	if err := s.records.Clear(); err != nil {
		slog.Warn("failed to remove session record", "error", err)
	}
	recordOperation("logout", "ok")
}

// Restore adopts the persisted record, if any, as the current identity
// without re-checking credentials. Called once at process start. An absent
// or malformed record leaves the session anonymous; neither is an error.
func (s *Store) Restore() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAnonymous {
		return
	}

	id, err := s.records.Load()
	if err != nil {
		slog.Debug("session restore skipped", "reason", err)
		return
	}
	if id == nil {
		return
	}
	if id.ID == "" || id.Email == "" || !id.Role.Valid() {
		slog.Debug("session restore skipped", "reason", "malformed record")
		return
	}

	s.identity = id
	s.state = StateAuthenticated
	recordOperation("restore", "ok")
}

// Snapshot returns the current state and a copy of the identity, if any.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{State: s.state}
	if s.identity != nil {
		id := *s.identity
		snap.Identity = &id
	}
	return snap
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Identity returns a copy of the current identity, or nil when not
// authenticated.
func (s *Store) Identity() *domain.Identity {
	return s.Snapshot().Identity
}

// begin transitions to authenticating, rejecting concurrent attempts.
// The mutex is not held across the credential check; the authenticating
// state itself serializes lifecycle operations.
func (s *Store) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateAuthenticating {
		return ErrSessionBusy
	}
	s.state = StateAuthenticating
	return nil
}

// fail resolves authenticating to anonymous.
func (s *Store) fail() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateAnonymous
	s.identity = nil
}

// complete resolves authenticating to authenticated and persists the record.
// A persistence failure is logged but does not undo the login; the worst
// case is a session that does not survive a restart.
func (s *Store) complete(id *domain.Identity) *domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = id
	s.state = StateAuthenticated
	if err := s.records.Save(id); err != nil {
		slog.Warn("failed to persist session record", "error", err)
	}

	out := *id
	return &out
}

// deriveDisplayName capitalizes the local part of the email address.
func deriveDisplayName(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return cases.Title(language.English, cases.NoLower).String(local)
}
