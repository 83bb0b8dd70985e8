// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

const testHashKey = "test-secret-key"

func TestHashString_MatchesHMAC(t *testing.T) {
	data := "Please log in."

	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write([]byte(data))
	expected := hex.EncodeToString(h.Sum(nil))

	if got := HashString(data, testHashKey); got != expected {
		t.Fatalf("unexpected hash value\nwant: %s\ngot:  %s", expected, got)
	}
}

func TestHashString_Deterministic(t *testing.T) {
	if HashString("data", testHashKey) != HashString("data", testHashKey) {
		t.Fatal("hash must be deterministic for the same input")
	}
}

func TestHashString_DifferentKeys(t *testing.T) {
	if HashString("data", "key-a") == HashString("data", "key-b") {
		t.Fatal("different keys must produce different hashes")
	}
}

func TestVerifyHashString(t *testing.T) {
	sig := HashString("notice", testHashKey)

	tests := []struct {
		name      string
		data      string
		signature string
		key       string
		want      bool
	}{
		{"valid", "notice", sig, testHashKey, true},
		{"tampered data", "notice!", sig, testHashKey, false},
		{"wrong key", "notice", sig, "other-key", false},
		{"not hex", "notice", "zz", testHashKey, false},
		{"empty signature", "notice", "", testHashKey, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyHashString(tt.data, tt.signature, tt.key); got != tt.want {
				t.Errorf("VerifyHashString() = %v, want %v", got, tt.want)
			}
		})
	}
}
