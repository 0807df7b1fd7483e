// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-gym-client/internal/adapter"
	"github.com/MKhiriev/go-gym-client/internal/app"
	"github.com/MKhiriev/go-gym-client/internal/config"
	"github.com/MKhiriev/go-gym-client/internal/logger"
	"github.com/MKhiriev/go-gym-client/internal/store"
	"github.com/MKhiriev/go-gym-client/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── fake API ──────────────────────────────────────────────────────────────────

type fakeAPI struct {
	access  atomic.Value // string
	rotated atomic.Bool
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()

	api := &fakeAPI{}
	api.access.Store("t1")

	r := chi.NewRouter()
	r.Post("/sessions", func(w http.ResponseWriter, r *http.Request) {
		var body models.SignInRequest
		_ = json.NewDecoder(r.Body).Decode(&body)

		if body.Email != "a@b.com" || body.Password != "secret1" {
			writeAPIError(w, http.StatusBadRequest, "E-mail e/ou senha incorreta.")
			return
		}
		_, _ = io.WriteString(w, `{"user":{"id":"1","name":"A"},"token":"t1","refresh_token":"r1"}`)
	})
	r.Post("/sessions/refresh-token", func(w http.ResponseWriter, r *http.Request) {
		api.access.Store("t2")
		api.rotated.Store(true)
		_, _ = io.WriteString(w, `{"token":"t2","refresh_token":"r2"}`)
	})
	r.Get("/groups", func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("Authorization") {
		case "Bearer " + api.access.Load().(string):
			_, _ = io.WriteString(w, `["costas"]`)
		case "Bearer revoked":
			writeAPIError(w, http.StatusUnauthorized, "JWT token inválido.")
		default:
			writeAPIError(w, http.StatusUnauthorized, app.MsgTokenExpired)
		}
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return api, srv
}

func writeAPIError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{Status: "error", Message: message})
}

// process is one run of the client: its own adapter, storage connection and
// session manager over a database file shared between runs.
type process struct {
	adapter  adapter.ServerAdapter
	storages *store.ClientStorages
	manager  *Manager
}

func startProcess(t *testing.T, serverURL string, storageCfg config.ClientStorage) *process {
	t.Helper()

	a, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)

	storages, err := store.NewClientStorages(context.Background(), storageCfg, logger.Nop())
	require.NoError(t, err)

	p := &process{adapter: a, storages: storages, manager: NewManager(a, storages.Session, logger.Nop())}
	t.Cleanup(p.stop)
	return p
}

func (p *process) stop() {
	p.manager.Close()
	_ = p.storages.Close()
}

func storedKeys(t *testing.T, kv store.KVRepository) map[string]json.RawMessage {
	t.Helper()

	out := map[string]json.RawMessage{}
	for _, key := range []string{store.TokenKey, store.UserKey} {
		value, found, err := kv.Get(context.Background(), key)
		require.NoError(t, err)
		if found {
			out[key] = value
		}
	}
	return out
}

func plainStorage(t *testing.T) config.ClientStorage {
	return config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "gym.db")}}
}

// ── scenarios ─────────────────────────────────────────────────────────────────

func TestSession_SignInCreatesTwoEntries(t *testing.T) {
	_, srv := newFakeAPI(t)
	p := startProcess(t, srv.URL, plainStorage(t))
	ctx := context.Background()

	require.Equal(t, StateUnauthenticated, p.manager.Restore(ctx))
	require.NoError(t, p.manager.SignIn(ctx, "a@b.com", "secret1"))

	user, ok := p.manager.User()
	require.True(t, ok)
	assert.Equal(t, models.ID("1"), user.ID)
	assert.Equal(t, "Bearer t1", p.adapter.AuthorizationHeader())
	assert.Equal(t, models.TokenPair{AccessToken: "t1", RefreshToken: "r1"}, p.manager.Tokens())

	entries := storedKeys(t, p.storages.KV)
	require.Len(t, entries, 2)
	assert.JSONEq(t, `{"token":"t1","refresh_token":"r1"}`, string(entries[store.TokenKey]))

	var stored models.User
	require.NoError(t, json.Unmarshal(entries[store.UserKey], &stored))
	assert.Equal(t, models.ID("1"), stored.ID)
}

func TestSession_RejectedSignInLeavesStoreUntouched(t *testing.T) {
	_, srv := newFakeAPI(t)
	p := startProcess(t, srv.URL, plainStorage(t))
	ctx := context.Background()

	err := p.manager.SignIn(ctx, "a@b.com", "nope12")

	require.Error(t, err)
	assert.Equal(t, "E-mail e/ou senha incorreta.", app.Message(err, app.MsgSignInFailed))
	assert.Equal(t, StateUnauthenticated, p.manager.State())
	assert.Empty(t, p.adapter.AuthorizationHeader())
	assert.Empty(t, storedKeys(t, p.storages.KV))
}

func TestSession_UnreachableServerGivesConnectivityError(t *testing.T) {
	p := startProcess(t, "http://127.0.0.1:1", plainStorage(t))

	err := p.manager.SignIn(context.Background(), "a@b.com", "secret1")

	require.Error(t, err)
	assert.Equal(t, app.KindConnectivity, app.KindOf(err))
	assert.Equal(t, app.MsgConnectivity, app.Message(err, app.MsgConnectivity))
	assert.Equal(t, StateUnauthenticated, p.manager.State())
}

func TestSession_RestoreAcrossProcesses(t *testing.T) {
	_, srv := newFakeAPI(t)
	storageCfg := plainStorage(t)
	ctx := context.Background()

	first := startProcess(t, srv.URL, storageCfg)
	first.manager.Restore(ctx)
	require.NoError(t, first.manager.SignIn(ctx, "a@b.com", "secret1"))
	first.stop()

	second := startProcess(t, srv.URL, storageCfg)
	var headerAtTransition string
	second.manager.Subscribe(func(e Event) {
		if e.Type == EventRestored {
			headerAtTransition = second.adapter.AuthorizationHeader()
		}
	})

	assert.Equal(t, StateAuthenticated, second.manager.Restore(ctx))
	user, ok := second.manager.User()
	require.True(t, ok)
	assert.Equal(t, models.ID("1"), user.ID)
	assert.Equal(t, "A", user.Name)
	assert.Equal(t, "Bearer t1", headerAtTransition)

	groups, err := second.adapter.Groups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"costas"}, groups)
}

func TestSession_SignOutThenFreshProcessIsUnauthenticated(t *testing.T) {
	_, srv := newFakeAPI(t)
	storageCfg := plainStorage(t)
	ctx := context.Background()

	first := startProcess(t, srv.URL, storageCfg)
	first.manager.Restore(ctx)
	require.NoError(t, first.manager.SignIn(ctx, "a@b.com", "secret1"))

	first.manager.SignOut(ctx)
	first.manager.SignOut(ctx)

	_, ok := first.manager.User()
	assert.False(t, ok)
	assert.Empty(t, first.adapter.AuthorizationHeader())
	assert.Empty(t, storedKeys(t, first.storages.KV))
	first.stop()

	second := startProcess(t, srv.URL, storageCfg)
	assert.Equal(t, StateUnauthenticated, second.manager.Restore(ctx))
}

func TestSession_ServerRejectionSignsOut(t *testing.T) {
	_, srv := newFakeAPI(t)
	p := startProcess(t, srv.URL, plainStorage(t))
	ctx := context.Background()

	p.manager.Restore(ctx)
	require.NoError(t, p.manager.SignIn(ctx, "a@b.com", "secret1"))

	var signedOut atomic.Int32
	p.manager.Subscribe(func(e Event) {
		if e.Type == EventSignedOut {
			signedOut.Add(1)
		}
	})

	// a token the server no longer accepts and cannot be refreshed
	p.adapter.SetCredentials(models.TokenPair{AccessToken: "revoked", RefreshToken: "r1"})
	_, err := p.adapter.Groups(ctx)

	require.Error(t, err)
	assert.Equal(t, StateUnauthenticated, p.manager.State())
	assert.Empty(t, p.adapter.AuthorizationHeader())
	assert.Empty(t, storedKeys(t, p.storages.KV))
	assert.Equal(t, int32(1), signedOut.Load())
}

func TestSession_RefreshedTokensArePersisted(t *testing.T) {
	api, srv := newFakeAPI(t)
	p := startProcess(t, srv.URL, plainStorage(t))
	ctx := context.Background()

	p.manager.Restore(ctx)
	require.NoError(t, p.manager.SignIn(ctx, "a@b.com", "secret1"))

	// the server expires t1
	api.access.Store("t2")

	groups, err := p.adapter.Groups(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"costas"}, groups)
	assert.True(t, api.rotated.Load())

	rotated := models.TokenPair{AccessToken: "t2", RefreshToken: "r2"}
	assert.Equal(t, rotated, p.manager.Tokens())
	assert.Equal(t, StateAuthenticated, p.manager.State())

	stored, found, err := p.storages.Session.LoadTokens(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, rotated, stored)
}

func TestSession_SealedStorage(t *testing.T) {
	_, srv := newFakeAPI(t)
	storageCfg := plainStorage(t)
	storageCfg.EncryptionKey = "correct horse battery staple"
	ctx := context.Background()

	first := startProcess(t, srv.URL, storageCfg)
	first.manager.Restore(ctx)
	require.NoError(t, first.manager.SignIn(ctx, "a@b.com", "secret1"))

	raw, found, err := first.storages.KV.Get(ctx, store.TokenKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.NotContains(t, string(raw), "refresh_token")
	first.stop()

	second := startProcess(t, srv.URL, storageCfg)
	assert.Equal(t, StateAuthenticated, second.manager.Restore(ctx))
	assert.Equal(t, "Bearer t1", second.adapter.AuthorizationHeader())
}
