package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set of a session token.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (iss, sub, exp,
// iat, jti) and [Identity] for the public account snapshot. There is no
// password field here, so a password hash can never end up in a token.
type Claims struct {
	jwt.RegisteredClaims
	Identity
}

// Token wraps a JWT session token with convenience accessors.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims holds the decoded claim set.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// Identity returns the identity embedded in the token.
func (t *Token) Identity() Identity {
	return t.Claims.Identity
}

// GetAccountID extracts the account identifier from the token's "sub" claim.
func (t *Token) GetAccountID() (int64, error) {
	sub, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting AccountID from token: %w", err)
	}

	accountID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting AccountID from token to int64: %w", err)
	}

	return accountID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
