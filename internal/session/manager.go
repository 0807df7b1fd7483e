// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-gym-client/internal/adapter"
	"github.com/MKhiriev/go-gym-client/internal/logger"
	"github.com/MKhiriev/go-gym-client/internal/store"
	"github.com/MKhiriev/go-gym-client/models"
	"golang.org/x/sync/singleflight"
)

// Manager is the process-wide session. The zero value is not usable; create
// one with [NewManager].
type Manager struct {
	adapter adapter.ServerAdapter
	storage store.SessionStorage

	// mu serializes mutations. It is never held while an authenticated
	// request is in flight, so adapter hooks may take it.
	mu      sync.Mutex
	flights singleflight.Group
	current atomic.Pointer[Session]

	restoreOnce sync.Once
	ready       chan struct{}

	subsMu    sync.Mutex
	nextSubID int
	subs      map[int]func(Event)

	closeOnce sync.Once
	unhook    []func()

	logger *logger.Logger
}

// NewManager returns a Manager in [StateRestoring] and registers it on the
// adapter hooks: a rejected session signs out, a refreshed token pair is
// persisted. Call [Manager.Restore] once at process start and [Manager.Close]
// at shutdown.
func NewManager(serverAdapter adapter.ServerAdapter, storage store.SessionStorage, logger *logger.Logger) *Manager {
	m := &Manager{
		adapter: serverAdapter,
		storage: storage,
		ready:   make(chan struct{}),
		subs:    make(map[int]func(Event)),
		logger:  logger,
	}
	m.current.Store(restoring)

	m.unhook = []func(){
		serverAdapter.OnUnauthorized(m.handleUnauthorized),
		serverAdapter.OnTokensRefreshed(m.handleTokensRefreshed),
	}

	return m
}

// Close unregisters the adapter hooks. The session itself is left as is.
func (m *Manager) Close() {
	m.closeOnce.Do(func() {
		for _, unhook := range m.unhook {
			unhook()
		}
	})
}

// ── accessors ───────────────────────────────────────────────────────────────

// Snapshot returns the current session.
func (m *Manager) Snapshot() Session {
	return *m.current.Load()
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	return m.current.Load().State
}

// User returns the signed-in user; ok is false when signed out.
func (m *Manager) User() (models.User, bool) {
	s := m.current.Load()
	return s.User, s.IsAuthenticated()
}

// Tokens returns the current token pair, or the zero pair.
func (m *Manager) Tokens() models.TokenPair {
	return m.current.Load().Tokens
}

// IsAuthenticated reports whether a user is signed in.
func (m *Manager) IsAuthenticated() bool {
	return m.current.Load().IsAuthenticated()
}

// IsLoadingStoredSession reports whether the initial restore has not
// finished yet. Consumers gated on the session show a neutral view meanwhile.
func (m *Manager) IsLoadingStoredSession() bool {
	select {
	case <-m.ready:
		return false
	default:
		return true
	}
}

// Ready returns a channel closed when the initial restore has finished.
func (m *Manager) Ready() <-chan struct{} {
	return m.ready
}

// ── restore ─────────────────────────────────────────────────────────────────

// Restore reads the persisted session and leaves [StateRestoring]. Only the
// first call does any work; later calls return the current state. Storage
// read errors are treated as "no session".
//
// When a session is found the adapter credentials are installed before the
// state becomes Authenticated.
func (m *Manager) Restore(ctx context.Context) State {
	var restored *Session
	m.restoreOnce.Do(func() {
		m.mu.Lock()
		next := m.loadStored(ctx)
		m.adapter.SetCredentials(next.Tokens)
		m.current.Store(next)
		m.mu.Unlock()

		close(m.ready)

		m.logger.Info().
			Str("func", "Manager.Restore").
			Str("state", next.State.String()).
			Str("user_id", next.User.ID.String()).
			Msg("stored session restored")
		restored = next
	})

	if restored != nil {
		m.emit(Event{Type: EventRestored, Session: *restored})
	}

	return m.State()
}

func (m *Manager) loadStored(ctx context.Context) *Session {
	log := m.logger.With().Str("func", "Manager.loadStored").Logger()

	tokens, tokensFound, err := m.storage.LoadTokens(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("reading stored tokens failed, starting signed out")
		return unauthenticated
	}

	user, userFound, err := m.storage.LoadUser(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("reading stored user failed, starting signed out")
		return unauthenticated
	}

	switch {
	case tokensFound && !tokens.IsZero() && userFound && !user.IsZero():
		return authenticated(user, tokens)
	case !tokensFound && !userFound:
		return unauthenticated
	}

	// half a session is never valid; drop what is left of it
	log.Warn().Bool("tokens", tokensFound).Bool("user", userFound).Msg("incomplete stored session, removing it")
	m.removeStored(ctx)
	return unauthenticated
}

// ── sign in ─────────────────────────────────────────────────────────────────

// SignIn exchanges email and password for a session.
//
// On success the user and the token pair are persisted atomically, the
// credentials are installed on the adapter and the state becomes
// Authenticated, in that order. On any failure nothing is persisted, the
// previous state is kept, and the error is returned as produced by the
// adapter or the storage (an *app.Error for API, connectivity and storage
// failures).
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrEmptyCredentials
	}

	m.Restore(ctx)

	// next stays nil for callers that joined another flight
	var next *Session
	key := "signin\x00" + email + "\x00" + password
	_, err, _ := m.flights.Do(key, func() (any, error) {
		m.mu.Lock()
		defer m.mu.Unlock()

		var err error
		next, err = m.signIn(ctx, email, password)
		return nil, err
	})
	if err != nil {
		return err
	}

	if next != nil {
		m.emit(Event{Type: EventSignedIn, Session: *next})
	}
	return nil
}

func (m *Manager) signIn(ctx context.Context, email, password string) (*Session, error) {
	log := m.logger.With().Str("func", "Manager.SignIn").Str("email", email).Logger()

	resp, err := m.adapter.SignIn(ctx, models.SignInRequest{Email: email, Password: password})
	if err != nil {
		log.Info().Err(err).Msg("sign in failed")
		return nil, err
	}

	tokens := resp.TokenPair()
	if err = m.storage.SaveSession(ctx, resp.User, tokens); err != nil {
		log.Error().Err(err).Msg("persisting the new session failed")
		return nil, err
	}

	m.adapter.SetCredentials(tokens)
	next := authenticated(resp.User, tokens)
	m.current.Store(next)

	log.Info().Str("user_id", resp.User.ID.String()).Msg("signed in")
	return next, nil
}

// ── sign out ────────────────────────────────────────────────────────────────

// SignOut ends the session. Memory and adapter credentials are cleared
// first, then both persisted entries are removed. Removal is best-effort and
// runs to the end even if ctx is cancelled; failures are only logged.
//
// SignOut is idempotent: when already signed out it changes nothing and emits
// no event.
func (m *Manager) SignOut(ctx context.Context) {
	m.Restore(ctx)

	var prev *Session
	_, _, _ = m.flights.Do("signout", func() (any, error) {
		m.mu.Lock()
		defer m.mu.Unlock()

		prev = m.signOut(context.WithoutCancel(ctx))
		return nil, nil
	})

	// nil for callers that joined another flight
	if prev != nil && prev.IsAuthenticated() {
		m.emit(Event{Type: EventSignedOut, Session: *unauthenticated})
	}
}

func (m *Manager) signOut(ctx context.Context) *Session {
	prev := m.current.Load()

	m.adapter.SetCredentials(models.TokenPair{})
	m.current.Store(unauthenticated)
	m.removeStored(ctx)

	if prev.IsAuthenticated() {
		m.logger.Info().
			Str("func", "Manager.SignOut").
			Str("user_id", prev.User.ID.String()).
			Msg("signed out")
	}
	return prev
}

// removeStored deletes both session entries, continuing past failures.
func (m *Manager) removeStored(ctx context.Context) {
	log := m.logger.With().Str("func", "Manager.removeStored").Logger()

	if err := m.storage.RemoveUser(ctx); err != nil {
		log.Warn().Err(err).Msg("removing stored user failed")
	}
	if err := m.storage.RemoveTokens(ctx); err != nil {
		log.Warn().Err(err).Msg("removing stored tokens failed")
	}
}

// ── profile ─────────────────────────────────────────────────────────────────

// UpdateUserProfile replaces the signed-in user and persists it; the token
// pair is untouched. The in-memory user is replaced before the write and is
// not rolled back when the write fails: the storage error is returned and the
// persisted copy lags until the next successful update.
func (m *Manager) UpdateUserProfile(ctx context.Context, user models.User) error {
	if user.IsZero() {
		return ErrEmptyUser
	}

	m.Restore(ctx)

	m.mu.Lock()
	cur := m.current.Load()
	if !cur.IsAuthenticated() {
		m.mu.Unlock()
		return ErrNotAuthenticated
	}

	next := authenticated(user, cur.Tokens)
	m.current.Store(next)
	err := m.storage.SaveUser(ctx, user)
	m.mu.Unlock()

	if err != nil {
		m.logger.Error().Err(err).Str("func", "Manager.UpdateUserProfile").Msg("persisting the user failed")
	}

	m.emit(Event{Type: EventProfileUpdated, Session: *next})
	return err
}

// ── adapter hooks ───────────────────────────────────────────────────────────

func (m *Manager) handleUnauthorized() {
	m.logger.Info().Str("func", "Manager.handleUnauthorized").Msg("server rejected the session")
	m.SignOut(context.Background())
}

// handleTokensRefreshed persists a rotated pair. A pair arriving after the
// session ended is dropped so a sign-out is never undone.
func (m *Manager) handleTokensRefreshed(tokens models.TokenPair) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur := m.current.Load()
	if !cur.IsAuthenticated() {
		return
	}

	m.current.Store(authenticated(cur.User, tokens))
	if err := m.storage.SaveTokens(context.Background(), tokens); err != nil {
		m.logger.Error().Err(err).Str("func", "Manager.handleTokensRefreshed").Msg("persisting refreshed tokens failed")
	}
}
