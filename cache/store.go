package cache

import (
	"context"

	"github.com/davrx/authlink/internal/wire"
)

// Store is the session cache used by the client. Implementations are safe
// for concurrent use; reads and writes are best-effort and never fail
// loudly.
type Store interface {
	// EnsureFresh advances the expiration window, dropping every entry
	// when the current window has lapsed. Called before any read or write.
	EnsureFresh(ctx context.Context)

	// Get returns the entry stored for token, or ok=false on a miss. A
	// lapsed window is a miss even if EnsureFresh has not run yet.
	Get(ctx context.Context, token string) (wire.Result, bool)

	// Put stores entry under token, overwriting any previous value.
	Put(ctx context.Context, token string, entry wire.Result)

	// Delete removes the entry for token. Deleting an absent token is a
	// no-op. Deletion keys solely by token.
	Delete(ctx context.Context, token string)
}
