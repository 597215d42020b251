// Package transport performs the outbound HTTP requests of the client.
//
// Its single entry point, [Executor.Post], is a total function: whatever
// happens on the wire — connect failure, timeout, garbage body, unexpected
// status — the caller receives exactly one wire.Result, with all failure
// modes collapsed into the connection_error code. No Go error crosses this
// boundary.
package transport
