// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// errIntentional is raised by the /trigger-error endpoints.
	errIntentional = errors.New("This is for testing")

	// errPageNotFound is reported for unknown routes and disallowed methods.
	errPageNotFound = errors.New("page not found")

	// errInvalidID is returned when a numeric path parameter cannot be parsed.
	errInvalidID = errors.New("invalid identifier in path")

	// errInvalidForm is returned when a request body cannot be parsed as a form.
	errInvalidForm = errors.New("invalid form submission")

	// errFlashTampered is reported when the flash cookie signature does not match.
	errFlashTampered = errors.New("flash cookie signature mismatch")
)
