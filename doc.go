// Package authlink is a Go client for a remote email/social login
// service. It issues the service's JSON-over-HTTPS requests — email and
// social sign-in, code verification, session info, refresh, and
// invalidation — and keeps a local cache of session responses keyed by
// session token.
//
// A [Client] is built once through [Builder] and is safe for concurrent
// use. Runtime outcomes, including transport failures, are never surfaced
// as Go errors: every operation returns a [Result] whose error field is
// the single thing callers branch on, with [CodeNoError] marking success
// and [CodeConnectionError] standing in for anything the client could not
// complete or parse. The only Go errors the package produces are the two
// lifecycle sentinels, [ErrBuilderUsed] and [ErrClientNotReady], which
// flag programmer mistakes rather than runtime conditions.
//
// # Architecture boundaries
//
// authlink is the public surface. The wire contract (paths, field names,
// error taxonomy) and the request executor live under internal/ and are
// never exported. The session cache is the one pluggable seam: the
// [cache] subpackage ships an in-memory windowed store (the default) and
// a Redis-backed variant selected through [Builder.WithRedis].
//
// # What this package must NOT do
//
//   - Interpret session tokens. They are opaque strings; the server is
//     the only party that can read them.
//   - Impose timeouts or retries of its own. Calls are bounded by the
//     caller's context and [Config.RequestTimeout] only.
//   - Treat the cache as a source of truth. It is an optimization; the
//     server remains authoritative and cached reads are best-effort.
package authlink
