// Package wire defines the fixed JSON-over-HTTPS contract of the remote
// login service: request paths, request body shapes, response field names,
// and the server error taxonomy. Nothing in here is negotiable by the
// client; the shapes mirror the server's documentation field for field.
package wire
