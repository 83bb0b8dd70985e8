package http

import (
	"net/http"

	"github.com/MKhiriev/go-motors/models"
)

const sessionCookieName = "jwt"

// setSessionCookie stores the signed token in the session cookie. The cookie
// lives exactly as long as the token.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token) {
	maxAge := 0
	if exp, iat := token.Claims.ExpiresAt, token.Claims.IssuedAt; exp != nil && iat != nil {
		maxAge = int(exp.Sub(iat.Time).Seconds())
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func sessionCookie(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
