// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-motors/internal/app"
	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/MKhiriev/go-motors/internal/utils"
	"github.com/MKhiriev/go-motors/internal/view"
	"github.com/MKhiriev/go-motors/models"
	"github.com/rs/zerolog"
)

const loginPath = "/account/login"

// withIdentity decodes the session cookie once per request.
//
// Without a cookie the request continues anonymously. A cookie that verifies
// puts the session into the request context. A cookie that fails
// verification is cleared and the client is sent to the login page.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := sessionCookie(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		log := logger.FromRequest(r)

		token, err := h.services.AuthService.ParseToken(ctx, raw)
		if err != nil {
			log.Info().Err(err).Msg("session cookie rejected")
			h.clearSessionCookie(w)
			h.flashes.set(w, app.MsgPleaseLogIn)
			http.Redirect(w, r, loginPath, http.StatusFound)
			return
		}

		identity := token.Identity()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("account_id", identity.AccountID)
		})

		next.ServeHTTP(w, r.WithContext(utils.WithSession(log.WithContext(ctx), token)))
	})
}

// requireLogin lets only authenticated requests through.
func (h *Handler) requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetIdentityFromContext(r.Context()); !ok {
			h.flashes.set(w, app.MsgPleaseLogIn)
			http.Redirect(w, r, loginPath, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireRole lets through only identities holding one of roles. Rejections
// render the login view with 401 (anonymous) or 403 (authenticated).
func (h *Handler) requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			identity, ok := utils.GetIdentityFromContext(r.Context())
			switch {
			case !ok:
				h.render(w, r, http.StatusUnauthorized, view.PageLogin, view.Page{
					Title:   "Login",
					Notices: []string{app.MsgMustBeLoggedIn},
				})
			case !identity.Role.Valid():
				log.Warn().Str("role", identity.Role.String()).Msg("session carries an unknown role")
				h.render(w, r, http.StatusForbidden, view.PageLogin, view.Page{
					Title:   "Login",
					Notices: []string{app.MsgAuthorizationKO},
				})
			case !identity.HasRole(roles...):
				log.Info().Str("role", identity.Role.String()).Str("path", r.URL.Path).Msg("access denied")
				h.render(w, r, http.StatusForbidden, view.PageLogin, view.Page{
					Title:   "Login",
					Notices: []string{app.MsgNoPermission},
				})
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
