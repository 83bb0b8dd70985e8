// Package server runs the HTTP server of the site.
//
// It owns the server lifecycle: startup, serving until the context passed
// to RunServer is cancelled (normally by SIGINT, SIGTERM or SIGQUIT) and
// graceful shutdown of in-flight requests.
package server
