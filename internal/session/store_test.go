package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arogyapath/portal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockChecker implements CredentialChecker for testing.
type mockChecker struct {
	authErr   error
	regErr    error
	authCalls int
	regCalls  int

	// blockCh, when set, makes calls wait until the channel is closed.
	blockCh chan struct{}
}

func (m *mockChecker) Authenticate(ctx context.Context, _ Credentials) error {
	m.authCalls++
	if m.blockCh != nil {
		<-m.blockCh
	}
	return m.authErr
}

func (m *mockChecker) Register(ctx context.Context, _ Profile) error {
	m.regCalls++
	if m.blockCh != nil {
		<-m.blockCh
	}
	return m.regErr
}

// mockRecords implements RecordStore for testing.
type mockRecords struct {
	saved      *domain.Identity
	saveCalls  int
	clearCalls int
	loadResult *domain.Identity
	loadErr    error
	saveErr    error
}

func (m *mockRecords) Load() (*domain.Identity, error) {
	return m.loadResult, m.loadErr
}

func (m *mockRecords) Save(id *domain.Identity) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	copied := *id
	m.saved = &copied
	return nil
}

func (m *mockRecords) Clear() error {
	m.clearCalls++
	m.saved = nil
	return nil
}

func TestLogin_Success(t *testing.T) {
	checker := &mockChecker{}
	records := &mockRecords{}
	store := NewStore(checker, records)

	id, err := store.Login(context.Background(), "asha@example.com", "secret123", domain.RolePatient)

	require.NoError(t, err)
	require.NotNil(t, id)
	assert.NotEmpty(t, id.ID)
	assert.Equal(t, "asha@example.com", id.Email)
	assert.Equal(t, "Asha", id.DisplayName)
	assert.Equal(t, domain.RolePatient, id.Role)
	assert.Empty(t, id.Phone)

	assert.Equal(t, StateAuthenticated, store.State())
	require.NotNil(t, records.saved, "record should be persisted")
	assert.Equal(t, id.ID, records.saved.ID)
	assert.Equal(t, 1, checker.authCalls)
}

func TestLogin_RoleMatchesInput(t *testing.T) {
	for _, role := range []domain.Role{domain.RolePatient, domain.RoleDoctor, domain.RolePharmacist} {
		t.Run(string(role), func(t *testing.T) {
			store := NewStore(&mockChecker{}, &mockRecords{})

			id, err := store.Login(context.Background(), "user@example.com", "pw", role)

			require.NoError(t, err)
			assert.Equal(t, role, id.Role)
			assert.Equal(t, StateAuthenticated, store.State())
		})
	}
}

func TestLogin_Failure(t *testing.T) {
	checker := &mockChecker{authErr: errors.New("rejected")}
	records := &mockRecords{}
	store := NewStore(checker, records)

	id, err := store.Login(context.Background(), "asha@example.com", "wrong", domain.RolePatient)

	assert.Nil(t, id)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Equal(t, StateAnonymous, store.State())
	assert.Nil(t, store.Identity())
	assert.Zero(t, records.saveCalls, "no record should be persisted on failure")
}

func TestLogin_RejectsConcurrentAttempt(t *testing.T) {
	checker := &mockChecker{blockCh: make(chan struct{})}
	store := NewStore(checker, &mockRecords{})

	firstDone := make(chan error, 1)
	go func() {
		_, err := store.Login(context.Background(), "first@example.com", "pw", domain.RolePatient)
		firstDone <- err
	}()

	// Wait for the first login to enter authenticating.
	require.Eventually(t, func() bool {
		return store.State() == StateAuthenticating
	}, time.Second, time.Millisecond)

	_, err := store.Login(context.Background(), "second@example.com", "pw", domain.RoleDoctor)
	assert.ErrorIs(t, err, ErrSessionBusy)

	close(checker.blockCh)
	require.NoError(t, <-firstDone)

	id := store.Identity()
	require.NotNil(t, id)
	assert.Equal(t, "first@example.com", id.Email, "first login should win, second rejected")
}

func TestLogin_ReplacesCurrentIdentity(t *testing.T) {
	records := &mockRecords{}
	store := NewStore(&mockChecker{}, records)

	_, err := store.Login(context.Background(), "one@example.com", "pw", domain.RolePatient)
	require.NoError(t, err)

	id, err := store.Login(context.Background(), "two@example.com", "pw", domain.RoleDoctor)
	require.NoError(t, err)

	assert.Equal(t, "two@example.com", id.Email)
	assert.Equal(t, "two@example.com", records.saved.Email, "record should be overwritten")
	assert.Equal(t, 2, records.saveCalls)
}

func TestLogin_SurvivesRecordSaveFailure(t *testing.T) {
	records := &mockRecords{saveErr: errors.New("disk full")}
	store := NewStore(&mockChecker{}, records)

	id, err := store.Login(context.Background(), "asha@example.com", "pw", domain.RolePatient)

	require.NoError(t, err, "a persistence failure must not undo the login")
	assert.NotNil(t, id)
	assert.Equal(t, StateAuthenticated, store.State())
}

func TestSignup_Success(t *testing.T) {
	checker := &mockChecker{}
	records := &mockRecords{}
	store := NewStore(checker, records)

	id, err := store.Signup(context.Background(), Profile{
		FullName: "Asha Rani",
		Email:    "asha.rani@example.com",
		Password: "secret123",
		Phone:    "+91 98765 43210",
		Role:     domain.RolePharmacist,
	})

	require.NoError(t, err)
	require.NotNil(t, id)
	assert.NotEmpty(t, id.ID)
	assert.Equal(t, "Asha Rani", id.DisplayName, "signup takes the profile name verbatim, no derivation")
	assert.Equal(t, "asha.rani@example.com", id.Email)
	assert.Equal(t, "+91 98765 43210", id.Phone)
	assert.Equal(t, domain.RolePharmacist, id.Role)
	assert.Equal(t, StateAuthenticated, store.State())
	assert.Equal(t, 1, checker.regCalls)
	require.NotNil(t, records.saved)
}

func TestSignup_Failure(t *testing.T) {
	store := NewStore(&mockChecker{regErr: errors.New("provider down")}, &mockRecords{})

	id, err := store.Signup(context.Background(), Profile{
		FullName: "Asha Rani",
		Email:    "asha@example.com",
		Password: "secret123",
		Role:     domain.RolePatient,
	})

	assert.Nil(t, id)
	assert.ErrorIs(t, err, ErrSignupFailed)
	assert.Equal(t, StateAnonymous, store.State())
}

func TestSignup_AssignsFreshIdentifiers(t *testing.T) {
	store := NewStore(&mockChecker{}, &mockRecords{})

	first, err := store.Signup(context.Background(), Profile{
		FullName: "A", Email: "a@example.com", Password: "pw", Role: domain.RolePatient,
	})
	require.NoError(t, err)

	second, err := store.Signup(context.Background(), Profile{
		FullName: "B", Email: "b@example.com", Password: "pw", Role: domain.RolePatient,
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestLogout_Idempotent(t *testing.T) {
	records := &mockRecords{}
	store := NewStore(&mockChecker{}, records)

	_, err := store.Login(context.Background(), "asha@example.com", "pw", domain.RolePatient)
	require.NoError(t, err)

	store.Logout()
	assert.Equal(t, StateAnonymous, store.State())
	assert.Nil(t, store.Identity())
	assert.Equal(t, 1, records.clearCalls)

	store.Logout()
	assert.Equal(t, StateAnonymous, store.State())
	assert.Equal(t, 1, records.clearCalls, "logout while anonymous is a no-op")
}

func TestRestore_AdoptsPersistedRecord(t *testing.T) {
	saved := &domain.Identity{
		ID:          "rec-1",
		Email:       "asha@example.com",
		DisplayName: "Asha",
		Role:        domain.RoleDoctor,
		Phone:       "+91 98765 43210",
	}
	checker := &mockChecker{}
	store := NewStore(checker, &mockRecords{loadResult: saved})

	store.Restore()

	assert.Equal(t, StateAuthenticated, store.State())
	id := store.Identity()
	require.NotNil(t, id)
	assert.Equal(t, *saved, *id)
	assert.Zero(t, checker.authCalls, "restore must not re-check credentials")
}

func TestRestore_AbsentRecord(t *testing.T) {
	store := NewStore(&mockChecker{}, &mockRecords{})

	store.Restore()

	assert.Equal(t, StateAnonymous, store.State())
	assert.Nil(t, store.Identity())
}

func TestRestore_CorruptRecord(t *testing.T) {
	store := NewStore(&mockChecker{}, &mockRecords{loadErr: errors.New("decode session record: unexpected EOF")})

	assert.NotPanics(t, store.Restore)
	assert.Equal(t, StateAnonymous, store.State())
}

func TestRestore_MalformedRecord(t *testing.T) {
	tests := []struct {
		name   string
		record *domain.Identity
	}{
		{"missing id", &domain.Identity{Email: "a@example.com", Role: domain.RolePatient}},
		{"missing email", &domain.Identity{ID: "1", Role: domain.RolePatient}},
		{"unknown role", &domain.Identity{ID: "1", Email: "a@example.com", Role: "admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(&mockChecker{}, &mockRecords{loadResult: tt.record})

			store.Restore()

			assert.Equal(t, StateAnonymous, store.State())
		})
	}
}

func TestRestore_NoopWhenAlreadyAuthenticated(t *testing.T) {
	records := &mockRecords{loadResult: &domain.Identity{
		ID: "stale", Email: "stale@example.com", Role: domain.RolePatient,
	}}
	store := NewStore(&mockChecker{}, records)

	_, err := store.Login(context.Background(), "fresh@example.com", "pw", domain.RoleDoctor)
	require.NoError(t, err)

	store.Restore()

	assert.Equal(t, "fresh@example.com", store.Identity().Email)
}

func TestDeriveDisplayName(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"asha@example.com", "Asha"},
		{"doctor@clinic.in", "Doctor"},
		{"pharmacist@store.in", "Pharmacist"},
		{"noatsign", "Noatsign"},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveDisplayName(tt.email))
		})
	}
}

func TestSimulator_DelayAndCancellation(t *testing.T) {
	instant := NewSimulator(0)
	assert.NoError(t, instant.Authenticate(context.Background(), Credentials{}))

	slow := NewSimulator(50 * time.Millisecond)
	start := time.Now()
	require.NoError(t, slow.Register(context.Background(), Profile{}))
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, NewSimulator(time.Minute).Authenticate(ctx, Credentials{}), context.Canceled)
}
