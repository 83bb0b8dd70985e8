// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the form validation rule-sets used by the HTTP
// validation pipeline.
//
// Core concepts:
//   - Field: an ordered chain of sanitizers and checks for one form field.
//     The chain stops at the first failing check, so a field reports at most
//     one message.
//   - RuleSet: the ordered list of fields for one form. All fields are
//     evaluated and every failure is collected into [Errors] in form order.
//
// Usage patterns:
//  1. Build a RuleSet with one of the New*Validator constructors.
//  2. Call Validate with the request context and the submitted form values.
//     The values are replaced with their sanitized form in place.
//  3. Inspect the returned error: [Errors] means user input was rejected,
//     anything else is a collaborator failure (e.g. the database is down).
package validators

import (
	"context"
	"net/url"
)

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// FormValidator is a Validator for submitted HTML forms.
type FormValidator interface {
	Validator

	// Echo returns the subset of form values that may be written back into a
	// re-rendered form. Sensitive fields such as passwords are left out.
	Echo(url.Values) url.Values
}

// EmailChecker reports whether an email address is already registered.
type EmailChecker interface {
	EmailExists(ctx context.Context, email string) (bool, error)
}
