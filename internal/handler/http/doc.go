// Package http implements the REST transport of the Last Words API.
//
// Routes are split into three groups: public (health, diagnostics, login and
// registration), authenticated (bearer token required) and authenticated with
// a WebAuthn verified token (secrets). Tracing, access logging, metrics,
// security headers and response compression run as middleware before
// requests reach the service layer.
package http
