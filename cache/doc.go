// Package cache holds the last-known session responses of the client,
// keyed by session token.
//
// Expiration is coarse: one shared window covers every entry, and crossing
// it drops them all at once. The window is checked lazily on the access
// path — there is no background timer. Both backends treat the cache as an
// optimization: a failed lookup is a miss, never an error, and the remote
// server stays authoritative.
package cache
