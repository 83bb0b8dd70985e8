// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-motors/internal/app"
	"github.com/MKhiriev/go-motors/internal/service"
	"github.com/MKhiriev/go-motors/internal/utils"
	"github.com/MKhiriev/go-motors/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// withIdentity
// ─────────────────────────────────────────────

func TestWithIdentity_NoCookieIsAnonymous(t *testing.T) {
	h, _ := newRouterHandler(t)

	var anonymous bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := utils.GetIdentityFromContext(r.Context())
		anonymous = !ok
	})

	rec := httptest.NewRecorder()
	h.withIdentity(next).ServeHTTP(rec, injectNopLogger(httptest.NewRequest(http.MethodGet, "/", nil)))

	assert.True(t, anonymous)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWithIdentity_ValidCookieStoresIdentity(t *testing.T) {
	h, _ := newRouterHandler(t)

	var got models.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := utils.GetIdentityFromContext(r.Context())
		require.True(t, ok)
		got = identity
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionFor(t, employeeIdentity).SignedString})

	rec := httptest.NewRecorder()
	h.withIdentity(next).ServeHTTP(rec, injectNopLogger(req))

	assert.Equal(t, employeeIdentity, got)
}

func TestWithIdentity_InvalidCookieClearsAndRedirects(t *testing.T) {
	tests := []struct {
		name    string
		cookie  string
		parseFn func(ctx context.Context, token string) (models.Token, error)
	}{
		{name: "tampered", cookie: "not.a.jwt"},
		{
			name:   "revoked",
			cookie: "anything",
			parseFn: func(context.Context, string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svcs := newRouterHandler(t)
			svcs.auth.parseTokenFn = tt.parseFn

			nextCalled := false
			next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { nextCalled = true })

			req := httptest.NewRequest(http.MethodGet, "/account/accounts", nil)
			req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: tt.cookie})

			rec := httptest.NewRecorder()
			h.withIdentity(next).ServeHTTP(rec, injectNopLogger(req))

			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, loginPath, rec.Header().Get("Location"))

			cleared := findCookie(rec, sessionCookieName)
			require.NotNil(t, cleared)
			assert.Equal(t, -1, cleared.MaxAge)
			assert.NotNil(t, findCookie(rec, flashCookieName))
		})
	}
}

// ─────────────────────────────────────────────
// requireLogin
// ─────────────────────────────────────────────

func TestRequireLogin_AnonymousIsRedirectedWithNotice(t *testing.T) {
	h, _ := newRouterHandler(t)

	rec := serve(t, h, http.MethodGet, "/account/accounts", nil, nil)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, loginPath, rec.Header().Get("Location"))

	flash := findCookie(rec, flashCookieName)
	require.NotNil(t, flash)
	messages, err := h.flashes.decode(flash.Value)
	require.NoError(t, err)
	assert.Equal(t, []string{app.MsgPleaseLogIn}, messages)
}

func TestRequireLogin_AuthenticatedPassesThrough(t *testing.T) {
	h, _ := newRouterHandler(t)

	rec := serve(t, h, http.MethodGet, "/account/accounts", nil, &clientIdentity)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome Basic")
}

// ─────────────────────────────────────────────
// requireRole
// ─────────────────────────────────────────────

func TestRequireRole(t *testing.T) {
	unknown := models.Identity{AccountID: 10, FirstName: "Odd", Role: models.Role("Guest")}

	tests := []struct {
		name       string
		identity   *models.Identity
		wantStatus int
		wantNotice string
	}{
		{"anonymous", nil, http.StatusUnauthorized, app.MsgMustBeLoggedIn},
		{"client", &clientIdentity, http.StatusForbidden, app.MsgNoPermission},
		{"unknown role", &unknown, http.StatusForbidden, app.MsgAuthorizationKO},
		{"employee", &employeeIdentity, http.StatusOK, ""},
		{"admin", &adminIdentity, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newRouterHandler(t)

			rec := serve(t, h, http.MethodGet, "/inv", nil, tt.identity)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantNotice != "" {
				assert.Contains(t, rec.Body.String(), tt.wantNotice)
				assert.Contains(t, rec.Body.String(), `action="/account/login"`)
				return
			}
			assert.Contains(t, rec.Body.String(), "Add New Classification")
		})
	}
}
