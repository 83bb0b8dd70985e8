// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-motors/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestSessionCtxKey(t *testing.T) {
	if SessionCtxKey.String() != "session" {
		t.Errorf("expected 'session', got '%s'", SessionCtxKey.String())
	}
}

func TestGetIdentityFromContext_Success(t *testing.T) {
	token := models.Token{Claims: models.Claims{Identity: testIdentity}}
	ctx := WithSession(context.Background(), token)

	identity, ok := GetIdentityFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if identity != testIdentity {
		t.Errorf("expected identity %+v, got %+v", testIdentity, identity)
	}
}

func TestGetSessionFromContext_Success(t *testing.T) {
	token := models.Token{SignedString: "signed", Claims: models.Claims{Identity: testIdentity}}
	ctx := WithSession(context.Background(), token)

	got, ok := GetSessionFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got.SignedString != "signed" {
		t.Errorf("expected signed string 'signed', got '%s'", got.SignedString)
	}
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	identity, ok := GetIdentityFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if identity != (models.Identity{}) {
		t.Errorf("expected zero identity, got %+v", identity)
	}
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SessionCtxKey, "not-a-token")

	_, ok := GetIdentityFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetIdentityFromContext_DifferentKey(t *testing.T) {
	otherKey := contextKey("otherKey")
	ctx := context.WithValue(context.Background(), otherKey, models.Token{})

	_, ok := GetIdentityFromContext(ctx)

	if ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
