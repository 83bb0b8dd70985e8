// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account represents a registered user of the site.
// Sensitive fields must never be exposed outside trusted boundaries.
type Account struct {
	// AccountID is the internal unique identifier of the account.
	AccountID int64 `json:"account_id"`

	// FirstName is the given name of the account owner.
	FirstName string `json:"account_firstname"`

	// LastName is the family name of the account owner.
	LastName string `json:"account_lastname"`

	// Email is the unique login identifier of the account.
	Email string `json:"account_email"`

	// Password stores the bcrypt hash of the account password.
	// It is never serialized and never embedded into a session token.
	Password string `json:"-"`

	// AccountType is the authorization role of the account.
	AccountType Role `json:"account_type"`

	// DarkMode is the persisted UI theme preference.
	DarkMode bool `json:"account_dark_mode"`

	// CreatedAt is the timestamp when the account was registered.
	CreatedAt time.Time `json:"-"`
}

// Identity returns the public snapshot of the account that is safe to embed
// into a session token.
func (a Account) Identity() Identity {
	return Identity{
		AccountID: a.AccountID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Role:      a.AccountType,
	}
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "account"
}
