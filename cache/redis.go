package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davrx/authlink/internal/wire"
)

// Redis is a Store backed by a shared Redis instance, for processes that
// want cached sessions to survive restarts or be shared across replicas.
//
// The window is a generation number stored under {prefix}:window with
// TTL equal to the cache duration. Entries live under
// {prefix}:{generation}:{token}; when the window key lapses a new
// generation is opened and every old entry becomes unreachable in one
// step, mirroring the batch expiration of the in-memory store. Old
// entries carry the same TTL as a backstop so orphaned generations drain
// on their own.
type Redis struct {
	rdb      *redis.Client
	prefix   string
	duration time.Duration
}

// NewRedis creates a Redis store. All keys are namespaced under prefix.
func NewRedis(rdb *redis.Client, prefix string, duration time.Duration) *Redis {
	return &Redis{
		rdb:      rdb,
		prefix:   prefix,
		duration: duration,
	}
}

func (r *Redis) windowKey() string { return r.prefix + ":window" }
func (r *Redis) genKey() string    { return r.prefix + ":gen" }

func (r *Redis) entryKey(gen int64, token string) string {
	return fmt.Sprintf("%s:%d:%s", r.prefix, gen, token)
}

// currentGen returns the generation of the open window, opening a new one
// when the previous window has lapsed. ok=false means Redis is
// unreachable and the caller should treat the access as a miss.
func (r *Redis) currentGen(ctx context.Context) (int64, bool) {
	gen, err := r.rdb.Get(ctx, r.windowKey()).Int64()
	if err == nil {
		return gen, true
	}
	if !errors.Is(err, redis.Nil) {
		return 0, false
	}

	next, err := r.rdb.Incr(ctx, r.genKey()).Result()
	if err != nil {
		return 0, false
	}
	set, err := r.rdb.SetNX(ctx, r.windowKey(), next, r.duration).Result()
	if err != nil {
		return 0, false
	}
	if !set {
		// Another replica opened the window first; adopt its generation.
		gen, err = r.rdb.Get(ctx, r.windowKey()).Int64()
		if err != nil {
			return 0, false
		}
		return gen, true
	}
	return next, true
}

// EnsureFresh opens a new window when the previous one has lapsed. With
// Redis the lapse itself is enforced by the window key's TTL.
func (r *Redis) EnsureFresh(ctx context.Context) {
	r.currentGen(ctx)
}

// Get returns the entry stored for token in the current generation.
func (r *Redis) Get(ctx context.Context, token string) (wire.Result, bool) {
	gen, ok := r.currentGen(ctx)
	if !ok {
		return nil, false
	}
	data, err := r.rdb.Get(ctx, r.entryKey(gen, token)).Bytes()
	if err != nil {
		return nil, false
	}
	var entry wire.Result
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}
	return entry, true
}

// Put stores entry under token in the current generation.
func (r *Redis) Put(ctx context.Context, token string, entry wire.Result) {
	gen, ok := r.currentGen(ctx)
	if !ok {
		return
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	r.rdb.Set(ctx, r.entryKey(gen, token), data, r.duration)
}

// Delete removes the entry for token from the current generation.
func (r *Redis) Delete(ctx context.Context, token string) {
	gen, ok := r.currentGen(ctx)
	if !ok {
		return
	}
	r.rdb.Del(ctx, r.entryKey(gen, token))
}
