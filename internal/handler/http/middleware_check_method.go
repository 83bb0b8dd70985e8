// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-motors/internal/logger"
)

// CheckHTTPMethod returns an [http.HandlerFunc] intended to be registered as
// the router's MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// Chi answers a known path requested with an unregistered method with
// 405 Method Not Allowed. This handler answers it exactly like an unknown
// path instead, so the existence of the route is not revealed.
//
// Register it before mounting sub-routers: chi copies the handler into
// sub-routers only when they are mounted.
//
// Usage:
//
//	router := chi.NewRouter()
//	router.MethodNotAllowed(CheckHTTPMethod(h.notFound))
//	// ... register routes ...
func CheckHTTPMethod(notFound http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("method is not registered for path")

		notFound(w, r)
	}
}
