package authlink

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/davrx/authlink/cache"
	"github.com/davrx/authlink/internal/transport"
)

// Client talks to the login service. Construct it through [Builder]; the
// zero Client is not usable and every operation on it fails with
// [ErrClientNotReady]. A built Client is safe for concurrent use.
type Client struct {
	config  Config
	exec    *transport.Executor
	store   cache.Store
	metrics *Metrics
	log     zerolog.Logger
	ready   bool
}

// Config returns a copy of the configuration the client was built with.
func (c *Client) Config() Config {
	return c.config
}

// MetricsSnapshot returns a point-in-time copy of the client's counters.
// Empty unless metrics were enabled at build time.
func (c *Client) MetricsSnapshot() map[MetricID]uint64 {
	if c == nil {
		return map[MetricID]uint64{}
	}
	return c.metrics.Snapshot()
}

func (c *Client) guard() error {
	if c == nil || !c.ready {
		return ErrClientNotReady
	}
	return nil
}

// do issues one request and counts it. The cache window is advanced
// before every operation so expiration is checked lazily on the access
// path.
func (c *Client) do(ctx context.Context, path string, body any) Result {
	c.metrics.Inc(MetricRequests)
	res := c.exec.Post(ctx, path, body)
	if res.Code() == CodeConnectionError {
		c.metrics.Inc(MetricConnectionErrors)
	}
	return res
}

func (c *Client) freshen(ctx context.Context) {
	if c.store != nil {
		c.store.EnsureFresh(ctx)
	}
}

func (c *Client) cacheGet(ctx context.Context, token string) (Result, bool) {
	if c.store == nil {
		return nil, false
	}
	entry, ok := c.store.Get(ctx, token)
	if ok {
		c.metrics.Inc(MetricCacheHits)
	} else {
		c.metrics.Inc(MetricCacheMisses)
	}
	return entry, ok
}

// cachePut stores a successful session-bearing result under its token.
func (c *Client) cachePut(ctx context.Context, token string, entry Result) {
	if c.store == nil || token == "" {
		return
	}
	c.store.Put(ctx, token, entry)
	c.metrics.Inc(MetricCacheWrites)
}

func (c *Client) cacheDelete(ctx context.Context, token string) {
	if c.store == nil {
		return
	}
	c.store.Delete(ctx, token)
	c.metrics.Inc(MetricCacheDeletes)
}
