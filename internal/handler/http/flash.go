package http

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/MKhiriev/go-motors/internal/utils"
)

const (
	flashCookieName = "flash"
	flashMaxAge     = 60
)

// flashStore keeps one-shot notices across a redirect in a signed cookie.
// The value is base64url(JSON messages) + "." + hex HMAC-SHA256 of the payload.
type flashStore struct {
	key    string
	secure bool
}

func (f *flashStore) set(w http.ResponseWriter, messages ...string) {
	data, err := json.Marshal(messages)
	if err != nil {
		return
	}
	payload := base64.RawURLEncoding.EncodeToString(data)

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    payload + "." + utils.HashString(payload, f.key),
		Path:     "/",
		MaxAge:   flashMaxAge,
		HttpOnly: true,
		Secure:   f.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// pop returns the pending notices and expires the cookie. A missing or
// tampered cookie yields no notices.
func (f *flashStore) pop(w http.ResponseWriter, r *http.Request) []string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   f.secure,
		SameSite: http.SameSiteLaxMode,
	})

	messages, err := f.decode(cookie.Value)
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("dropping flash cookie")
		return nil
	}
	return messages
}

func (f *flashStore) decode(value string) ([]string, error) {
	payload, signature, ok := strings.Cut(value, ".")
	if !ok || !utils.VerifyHashString(payload, signature, f.key) {
		return nil, errFlashTampered
	}

	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("error decoding flash payload: %w", err)
	}

	var messages []string
	if err = json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("error unmarshalling flash payload: %w", err)
	}
	return messages, nil
}
