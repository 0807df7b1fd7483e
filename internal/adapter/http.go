// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-gym-client/internal/config"
	"github.com/MKhiriev/go-gym-client/internal/logger"
	"github.com/MKhiriev/go-gym-client/internal/utils"
	"github.com/MKhiriev/go-gym-client/models"
	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"
)

// HeaderRequestID carries a per-request identifier for server-side tracing.
const HeaderRequestID = "X-Request-ID"

// sendFunc performs one attempt of a request. It is called again for the
// retry after a refresh, so it must rebuild any consumable body.
type sendFunc func(req *resty.Request) (*resty.Response, error)

// credentials is an installed token pair. Every rotation of one sign-in keeps
// the session number; each SetCredentials starts a new one.
type credentials struct {
	models.TokenPair
	session uint64
}

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string
	ids     *utils.UUIDGenerator

	// creds is nil when signed out. The pointer identity doubles as the
	// credentials generation compared by refresh.
	creds    atomic.Pointer[credentials]
	sessions atomic.Uint64
	refresh  singleflight.Group

	hooksMu           sync.Mutex
	nextHookID        int
	unauthorizedHooks map[int]func()
	refreshedHooks    map[int]func(models.TokenPair)

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client:            utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		baseURL:           baseURL,
		ids:               utils.NewUUIDGenerator(),
		unauthorizedHooks: make(map[int]func()),
		refreshedHooks:    make(map[int]func(models.TokenPair)),
		logger:            logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ── credentials ─────────────────────────────────────────────────────────────

// SetCredentials implements [ServerAdapter].
func (h *httpServerAdapter) SetCredentials(creds models.TokenPair) {
	creds.AccessToken = strings.TrimSpace(creds.AccessToken)
	creds.RefreshToken = strings.TrimSpace(creds.RefreshToken)

	if creds.IsZero() {
		h.creds.Store(nil)
		return
	}
	h.creds.Store(&credentials{TokenPair: creds, session: h.sessions.Add(1)})
}

// Credentials implements [ServerAdapter].
func (h *httpServerAdapter) Credentials() models.TokenPair {
	if creds := h.creds.Load(); creds != nil {
		return creds.TokenPair
	}
	return models.TokenPair{}
}

// AuthorizationHeader implements [ServerAdapter].
func (h *httpServerAdapter) AuthorizationHeader() string {
	return authorizationHeader(h.creds.Load())
}

func authorizationHeader(creds *credentials) string {
	if creds == nil || creds.AccessToken == "" {
		return ""
	}
	return "Bearer " + creds.AccessToken
}

// ── hooks ───────────────────────────────────────────────────────────────────

// OnUnauthorized implements [ServerAdapter].
func (h *httpServerAdapter) OnUnauthorized(hook func()) func() {
	h.hooksMu.Lock()
	defer h.hooksMu.Unlock()

	id := h.nextHookID
	h.nextHookID++
	h.unauthorizedHooks[id] = hook

	return func() {
		h.hooksMu.Lock()
		defer h.hooksMu.Unlock()
		delete(h.unauthorizedHooks, id)
	}
}

// OnTokensRefreshed implements [ServerAdapter].
func (h *httpServerAdapter) OnTokensRefreshed(hook func(models.TokenPair)) func() {
	h.hooksMu.Lock()
	defer h.hooksMu.Unlock()

	id := h.nextHookID
	h.nextHookID++
	h.refreshedHooks[id] = hook

	return func() {
		h.hooksMu.Lock()
		defer h.hooksMu.Unlock()
		delete(h.refreshedHooks, id)
	}
}

// hooks run without hooksMu held so they may unsubscribe or make requests.
func (h *httpServerAdapter) notifyUnauthorized() {
	h.hooksMu.Lock()
	hooks := make([]func(), 0, len(h.unauthorizedHooks))
	for _, hook := range h.unauthorizedHooks {
		hooks = append(hooks, hook)
	}
	h.hooksMu.Unlock()

	for _, hook := range hooks {
		hook()
	}
}

func (h *httpServerAdapter) notifyTokensRefreshed(pair models.TokenPair) {
	h.hooksMu.Lock()
	hooks := make([]func(models.TokenPair), 0, len(h.refreshedHooks))
	for _, hook := range h.refreshedHooks {
		hooks = append(hooks, hook)
	}
	h.hooksMu.Unlock()

	for _, hook := range hooks {
		hook(pair)
	}
}

// ── request plumbing ────────────────────────────────────────────────────────

func (h *httpServerAdapter) newRequest(ctx context.Context) *resty.Request {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader(HeaderRequestID, requestID)
}

// do sends an unauthenticated request. It never fires hooks.
func (h *httpServerAdapter) do(ctx context.Context, op string, send sendFunc) (*resty.Response, error) {
	resp, err := send(h.newRequest(ctx))
	if err != nil {
		return nil, mapTransportError(op, err)
	}

	h.logResponse(ctx, op, resp)
	if err = mapHTTPError(resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// attempt sends an authenticated request with the given credentials snapshot.
func (h *httpServerAdapter) attempt(ctx context.Context, op string, creds *credentials, send sendFunc) (*resty.Response, error) {
	req := h.newRequest(ctx)
	if header := authorizationHeader(creds); header != "" {
		req.SetHeader("Authorization", header)
	}

	resp, err := send(req)
	if err != nil {
		return nil, mapTransportError(op, err)
	}

	h.logResponse(ctx, op, resp)
	if err = mapHTTPError(resp); err != nil {
		return resp, err
	}
	return resp, nil
}

// doAuthed sends an authenticated request.
//
// A 401 caused by an expired or invalid access token triggers one refresh and
// one retry with the new pair. Any other 401, or a refresh the server
// rejects, fires the OnUnauthorized hooks. Hooks fire only while the rejected
// credentials are still installed: a request sent without credentials, or
// one whose credentials were replaced in flight, never ends the session.
func (h *httpServerAdapter) doAuthed(ctx context.Context, op string, send sendFunc) (*resty.Response, error) {
	snapshot := h.creds.Load()
	resp, err := h.attempt(ctx, op, snapshot, send)
	if !errors.Is(err, ErrUnauthorized) || snapshot == nil {
		return resp, err
	}

	if !isTokenRejection(err) || snapshot.RefreshToken == "" {
		h.endSession(ctx, op, snapshot, nil, "request unauthorized, ending session")
		return resp, err
	}

	refreshed, refreshErr := h.refreshFrom(ctx, snapshot)
	switch {
	case refreshErr == nil:
	case errors.Is(refreshErr, ErrCredentialsChanged):
		// signed out or signed in again meanwhile; the session is not ours to end
		return resp, err
	case errors.Is(refreshErr, ErrMalformedResponse), mapsToHTTPStatus(refreshErr):
		h.endSession(ctx, op, snapshot, refreshErr, "token refresh rejected, ending session")
		return resp, err
	default:
		return resp, refreshErr
	}

	resp, err = h.attempt(ctx, op, refreshed, send)
	if errors.Is(err, ErrUnauthorized) {
		h.endSession(ctx, op, refreshed, nil, "request unauthorized after refresh, ending session")
	}
	return resp, err
}

// endSession fires the OnUnauthorized hooks if rejected is still the
// installed credentials.
func (h *httpServerAdapter) endSession(ctx context.Context, op string, rejected *credentials, cause error, msg string) {
	log := logger.FromContext(ctx)

	if h.creds.Load() != rejected {
		log.Debug().Str("func", "httpServerAdapter.endSession").Str("op", op).Msg("rejected credentials already replaced, keeping session")
		return
	}

	log.Info().Err(cause).Str("func", "httpServerAdapter.endSession").Str("op", op).Msg(msg)
	h.notifyUnauthorized()
}

// mapsToHTTPStatus reports whether err came from a server response rather
// than from the transport.
func mapsToHTTPStatus(err error) bool {
	for _, sentinel := range []error{
		ErrBadRequest, ErrUnauthorized, ErrForbidden, ErrNotFound, ErrConflict,
		ErrPayloadTooLarge, ErrInternalServerError, ErrBadGateway, ErrUnexpectedStatus,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// refreshFrom rotates snapshot. Concurrent callers holding the same snapshot
// share one request. The new pair is installed only if snapshot is still the
// current credentials, so a concurrent sign-out is never undone. Credentials
// from another sign-in are never returned for a retry.
func (h *httpServerAdapter) refreshFrom(ctx context.Context, snapshot *credentials) (*credentials, error) {
	switch current := h.creds.Load(); {
	case current == snapshot:
	case current != nil && current.session == snapshot.session:
		// already rotated by another request
		return current, nil
	default:
		return nil, ErrCredentialsChanged
	}

	v, err, _ := h.refresh.Do(snapshot.RefreshToken, func() (any, error) {
		// one caller's cancellation must not fail the others
		pair, err := h.requestRefresh(context.WithoutCancel(ctx), snapshot.RefreshToken)
		if err != nil {
			return nil, err
		}

		next := &credentials{TokenPair: pair, session: snapshot.session}
		if !h.creds.CompareAndSwap(snapshot, next) {
			return nil, ErrCredentialsChanged
		}

		h.notifyTokensRefreshed(pair)
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*credentials), nil
}

func (h *httpServerAdapter) requestRefresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	resp, err := h.do(ctx, "refresh token", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(models.RefreshTokenRequest{RefreshToken: refreshToken}).
			Post("/sessions/refresh-token")
	})
	if err != nil {
		return models.TokenPair{}, err
	}

	var pair models.TokenPair
	if err = decode(resp, &pair); err != nil {
		return models.TokenPair{}, err
	}
	if pair.AccessToken == "" {
		return models.TokenPair{}, fmt.Errorf("%w: refresh response without token", ErrMalformedResponse)
	}
	if pair.RefreshToken == "" {
		pair.RefreshToken = refreshToken
	}

	return pair, nil
}

func (h *httpServerAdapter) logResponse(ctx context.Context, op string, resp *resty.Response) {
	logger.FromContext(ctx).Debug().
		Str("func", "httpServerAdapter").
		Str("op", op).
		Str("request_id", resp.Request.Header.Get(HeaderRequestID)).
		Int("status", resp.StatusCode()).
		Dur("took", resp.Time()).
		Msg("api response")
}

func decode(resp *resty.Response, target any) error {
	if err := json.Unmarshal(resp.Body(), target); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}

// ── API ─────────────────────────────────────────────────────────────────────

// SignIn implements [ServerAdapter]. The response must carry a user id and
// both tokens, otherwise [ErrMalformedResponse] is returned.
func (h *httpServerAdapter) SignIn(ctx context.Context, signIn models.SignInRequest) (models.SignInResponse, error) {
	resp, err := h.do(ctx, "sign in", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(signIn).
			Post("/sessions")
	})
	if err != nil {
		return models.SignInResponse{}, err
	}

	var out models.SignInResponse
	if err = decode(resp, &out); err != nil {
		return models.SignInResponse{}, err
	}
	if out.User.IsZero() || out.Token == "" || out.RefreshToken == "" {
		return models.SignInResponse{}, fmt.Errorf("%w: sign in response lacks user or tokens", ErrMalformedResponse)
	}

	return out, nil
}

// SignUp implements [ServerAdapter].
func (h *httpServerAdapter) SignUp(ctx context.Context, signUp models.SignUpRequest) error {
	_, err := h.do(ctx, "sign up", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(signUp).
			Post("/users")
	})
	return err
}

// RefreshTokens implements [ServerAdapter].
func (h *httpServerAdapter) RefreshTokens(ctx context.Context) (models.TokenPair, error) {
	snapshot := h.creds.Load()
	if snapshot == nil || snapshot.RefreshToken == "" {
		return models.TokenPair{}, ErrNoRefreshToken
	}

	refreshed, err := h.refreshFrom(ctx, snapshot)
	if err != nil {
		return models.TokenPair{}, err
	}
	return refreshed.TokenPair, nil
}

// UpdateProfile implements [ServerAdapter].
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, update models.ProfileUpdateRequest) error {
	_, err := h.doAuthed(ctx, "update profile", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(update).
			Put("/users")
	})
	return err
}

// UploadAvatar implements [ServerAdapter]. The file is read once and every
// attempt sends the full body. A file that cannot be read fails with
// [ErrFileUnreadable] before any request.
func (h *httpServerAdapter) UploadAvatar(ctx context.Context, file models.AvatarFile) (models.User, error) {
	data, err := os.ReadFile(file.Path)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrFileUnreadable, err)
	}

	resp, err := h.doAuthed(ctx, "upload avatar", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetMultipartField("avatar", file.Name, file.ContentType, bytes.NewReader(data)).
			Patch("/users/avatar")
	})
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = decode(resp, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Groups implements [ServerAdapter].
func (h *httpServerAdapter) Groups(ctx context.Context) ([]string, error) {
	resp, err := h.doAuthed(ctx, "groups", func(req *resty.Request) (*resty.Response, error) {
		return req.Get("/groups")
	})
	if err != nil {
		return nil, err
	}

	var groups []string
	if err = decode(resp, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// ExercisesByGroup implements [ServerAdapter].
func (h *httpServerAdapter) ExercisesByGroup(ctx context.Context, group string) ([]models.Exercise, error) {
	resp, err := h.doAuthed(ctx, "exercises by group", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetPathParam("group", group).
			Get("/exercises/bygroup/{group}")
	})
	if err != nil {
		return nil, err
	}

	var exercises []models.Exercise
	if err = decode(resp, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// Exercise implements [ServerAdapter].
func (h *httpServerAdapter) Exercise(ctx context.Context, id models.ID) (models.Exercise, error) {
	resp, err := h.doAuthed(ctx, "exercise", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetPathParam("id", id.String()).
			Get("/exercises/{id}")
	})
	if err != nil {
		return models.Exercise{}, err
	}

	var exercise models.Exercise
	if err = decode(resp, &exercise); err != nil {
		return models.Exercise{}, err
	}
	return exercise, nil
}

// History implements [ServerAdapter].
func (h *httpServerAdapter) History(ctx context.Context) ([]models.HistoryByDay, error) {
	resp, err := h.doAuthed(ctx, "history", func(req *resty.Request) (*resty.Response, error) {
		return req.Get("/history")
	})
	if err != nil {
		return nil, err
	}

	var days []models.HistoryByDay
	if err = decode(resp, &days); err != nil {
		return nil, err
	}
	return days, nil
}

// RegisterHistory implements [ServerAdapter].
func (h *httpServerAdapter) RegisterHistory(ctx context.Context, exerciseID models.ID) error {
	_, err := h.doAuthed(ctx, "register history", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody(models.HistoryRegisterRequest{ExerciseID: exerciseID}).
			Post("/history")
	})
	return err
}

// MediaURL implements [ServerAdapter].
func (h *httpServerAdapter) MediaURL(kind models.MediaKind, file string) string {
	if file == "" {
		return ""
	}
	return h.baseURL + "/" + string(kind) + "/" + url.PathEscape(file)
}
