// Package http implements the HTTP transport layer of the site.
//
// It wires the chi router, renders the server-side pages and hosts the
// middleware every request passes through: request tracing, access logging,
// response compression, session decoding, the login and role gates and the
// form validation pipeline. Business decisions are delegated to the service
// layer.
package http
