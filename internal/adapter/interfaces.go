// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a small HTTP client for talking to a running
// CSE Motors server from the outside, used by the healthcheck command.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrInternalServerError] for 500).
package adapter

import "context"

// SiteAdapter defines the calls the healthcheck makes against the site.
type SiteAdapter interface {
	// Version returns the application version reported by GET /version.
	Version(ctx context.Context) (string, error)

	// Ping requests path and returns nil when the server answers with a
	// 2xx or 3xx status.
	Ping(ctx context.Context, path string) error
}
