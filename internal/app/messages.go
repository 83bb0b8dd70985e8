// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing notices shown by the site.
//
// Keeping them in one place keeps the wording identical between the pages
// that render them and the tests that look for them. Messages that take
// arguments are format strings.
package app

// Session and authorization notices.
const (
	MsgPleaseLogIn      = "Please log in."
	MsgMustBeLoggedIn   = "You must be logged in to access this page."
	MsgNoPermission     = "You do not have permission to access that page."
	MsgAuthorizationKO  = "Authorization failed. Please log in again."
	MsgLoggedOut        = "You have been logged out."
	MsgCheckCredentials = "Please check your credentials and try again."
)

// Account notices.
const (
	// MsgRegistered takes the first name of the new account.
	MsgRegistered          = "Congratulations, you're registered %s. Please log in."
	MsgRegistrationError   = "Sorry, there was an error processing the registration."
	MsgRegistrationFailed  = "Sorry, the registration failed."
	MsgAccountUpdated      = "Your account information was successfully updated."
	MsgAccountUpdateFailed = "Account update failed."
	MsgPasswordUpdated     = "Your password was successfully updated."
	MsgPasswordFailed      = "Password update failed."
)

// Inventory notices.
const (
	// MsgClassificationAdded takes the classification name.
	MsgClassificationAdded  = "The %s classification was successfully added."
	MsgClassificationFailed = "Sorry, adding the classification failed."
	// MsgVehicleAdded takes the make and the model.
	MsgVehicleAdded  = "Vehicle %s %s added successfully."
	MsgVehicleFailed = "Failed to add vehicle."
)

// Error page messages.
const (
	MsgNotFound    = "Sorry, we appear to have lost that page."
	MsgServerError = "Oh no! There was a crash. Maybe try a different route?"
)
