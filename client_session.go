package authlink

import (
	"context"

	"github.com/davrx/authlink/internal/wire"
)

// SessionInfo returns the session state for token. A cached entry from
// the current window is returned as-is without a request; otherwise the
// server is asked and a successful answer is cached.
func (c *Client) SessionInfo(ctx context.Context, token string) (Result, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	c.freshen(ctx)

	if cached, ok := c.cacheGet(ctx, token); ok {
		c.log.Debug().Str("path", wire.PathSessionInfo).Msg("served from cache")
		return cached, nil
	}

	res := c.do(ctx, wire.PathSessionInfo, wire.SessionRequest{
		ProjectID:    c.config.ProjectID,
		SessionToken: token,
	})
	if res.OK() {
		c.cachePut(ctx, token, res)
	}
	return res, nil
}

// SessionRefresh rotates token into a fresh session. On success the old
// token's cache entry is dropped and the result is cached under the new
// token.
func (c *Client) SessionRefresh(ctx context.Context, token string) (Result, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	c.freshen(ctx)

	res := c.do(ctx, wire.PathSessionRefresh, wire.SessionRequest{
		ProjectID:    c.config.ProjectID,
		SessionToken: token,
	})
	if res.OK() {
		c.cacheDelete(ctx, token)
		c.cachePut(ctx, res.SessionToken(), res)
	}
	return res, nil
}

// SessionInvalidate revokes token on the server. invalidateType is
// passed through verbatim; see [InvalidateTypeCurrent] and
// [InvalidateTypeAll]. On success the token's cache entry is dropped
// regardless of window state.
func (c *Client) SessionInvalidate(ctx context.Context, token, invalidateType string) (Result, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	c.freshen(ctx)

	res := c.do(ctx, wire.PathSessionInvalidate, wire.SessionInvalidateRequest{
		ProjectID:      c.config.ProjectID,
		SessionToken:   token,
		InvalidateType: invalidateType,
	})
	if res.OK() {
		c.cacheDelete(ctx, token)
	}
	return res, nil
}
