// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "context"

// Account form field names.
const (
	FieldFirstName = "account_firstname"
	FieldLastName  = "account_lastname"
	FieldEmail     = "account_email"
	FieldPassword  = "account_password"
)

// Account form messages.
const (
	MsgFirstName      = "Please provide a first name."
	MsgLastName       = "Please provide a last name."
	MsgEmail          = "A valid email is required."
	MsgEmailExists    = "Email exists. Please log in or use different email"
	MsgWeakPassword   = "Password does not meet requirements."
	MsgPasswordNeeded = "Password is required."
)

func firstNameField() *Field {
	return NewField(FieldFirstName).Trim().Escape().
		NotEmpty(MsgFirstName).
		MinLength(1, MsgFirstName)
}

func lastNameField() *Field {
	return NewField(FieldLastName).Trim().Escape().
		NotEmpty(MsgLastName).
		MinLength(2, MsgLastName)
}

func emailField() *Field {
	return NewField(FieldEmail).Trim().Escape().
		NotEmpty(MsgEmail).
		IsEmail(MsgEmail).
		NormalizeEmail()
}

func strongPasswordField() *Field {
	return NewField(FieldPassword).Sensitive().Trim().
		NotEmpty(MsgWeakPassword).
		IsStrongPassword(DefaultPasswordPolicy, MsgWeakPassword)
}

// NewRegistrationValidator guards the registration form. The email must not
// already be registered according to accounts.
func NewRegistrationValidator(accounts EmailChecker) FormValidator {
	unique := func(ctx context.Context, email string) (bool, error) {
		exists, err := accounts.EmailExists(ctx, email)
		return !exists, err
	}

	return NewRuleSet("registration",
		firstNameField(),
		lastNameField(),
		emailField().Custom(unique, MsgEmailExists),
		strongPasswordField(),
	)
}

func NewLoginValidator() FormValidator {
	return NewRuleSet("login",
		emailField(),
		NewField(FieldPassword).Sensitive().Trim().NotEmpty(MsgPasswordNeeded),
	)
}

// NewAccountUpdateValidator guards the profile form. Email uniqueness is left
// to the database index.
func NewAccountUpdateValidator() FormValidator {
	return NewRuleSet("account-update",
		firstNameField(),
		lastNameField(),
		emailField(),
	)
}

func NewPasswordUpdateValidator() FormValidator {
	return NewRuleSet("password-update", strongPasswordField())
}
