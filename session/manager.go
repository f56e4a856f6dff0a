package session

import (
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/vetdesk/client-go/users"
)

// Data is the authenticated state handed to Login: the user record and the
// bearer token obtained from the server. The two are always set and cleared
// together.
type Data struct {
	User  *users.User
	Token string
}

// State is the manager's lifecycle position. It starts at StateRestoring and
// settles into StateAuthenticated or StateAnonymous after Restore; Login and
// Logout move between the latter two.
type State int

const (
	StateRestoring State = iota
	StateAnonymous
	StateAuthenticated
)

// Manager holds the in-memory session and keeps the persistent Store in step
// with it. It is constructed explicitly and passed by reference to consumers
// rather than living as ambient global state, so tests can run it against a
// fake store.
type Manager struct {
	mu      sync.RWMutex
	store   Store
	user    *users.User
	token   string
	tenant  string
	loading bool
}

func NewManager(store Store) (*Manager, error) {
	if store == nil {
		return nil, errors.New("[NewManager] store is required")
	}
	return &Manager{store: store, loading: true}, nil
}

// Restore seeds the session from the store, once, at startup. Token and user
// restore only together; a partial record restores nothing. Storage failures
// were already swallowed by the store layer, so Restore cannot fail visibly —
// it always ends with loading cleared, exactly once.
func (m *Manager) Restore() {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, haveToken := LoadToken(m.store)
	user, haveUser := LoadUser(m.store)
	if haveToken && haveUser && token != "" {
		m.token = token
		m.user = user
	}
	if tenant, ok := LoadTenant(m.store); ok {
		m.tenant = tenant
	}
	m.loading = false
}

// Login installs an authenticated session and persists it. No network call
// happens here; the caller has already obtained the data from the server.
func (m *Manager) Login(data Data) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = data.User
	m.token = data.Token
	SaveToken(m.store, data.Token)
	SaveUser(m.store, data.User)
}

// Logout clears the in-memory session and removes token and user from the
// store. The tenant selection survives a logout. No network call.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = nil
	m.token = ""
	m.store.Remove(KeyToken)
	m.store.Remove(KeyUser)
}

// UpdateUser replaces the user record in memory and in the store, leaving the
// token untouched. Used after a profile update.
func (m *Manager) UpdateUser(user *users.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.user = user
	SaveUser(m.store, user)
}

// SetTenant selects the active tenant and persists it.
func (m *Manager) SetTenant(tenantID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tenant = tenantID
	SaveTenant(m.store, tenantID)
}

func (m *Manager) Tenant() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.tenant
}

// IsAuthenticated is derived, never stored: true iff a user is present. It is
// recomputed on every read.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.user != nil
}

func (m *Manager) IsLoading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.loading
}

func (m *Manager) User() *users.User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.user
}

func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.token
}

func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	switch {
	case m.loading:
		return StateRestoring
	case m.user != nil:
		return StateAuthenticated
	default:
		return StateAnonymous
	}
}

// TokenClaims decodes the bearer token's claims without verifying the
// signature. Verification is the server's job; this exists for display
// (subject, expiry) only and never gates restore or requests.
func (m *Manager) TokenClaims() (jwt.MapClaims, error) {
	m.mu.RLock()
	token := m.token
	m.mu.RUnlock()

	if token == "" {
		return nil, errors.New("[TokenClaims] no active session")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "[TokenClaims] parsing token")
	}
	return claims, nil
}
