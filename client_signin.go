package authlink

import (
	"context"

	"github.com/davrx/authlink/internal/wire"
)

// SignInEmail asks the service to send a sign-in code to email. The
// result carries no session; nothing is cached.
func (c *Client) SignInEmail(ctx context.Context, email string) (Result, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	c.freshen(ctx)
	return c.do(ctx, wire.PathSignInEmail, wire.SignInEmailRequest{
		ProjectID: c.config.ProjectID,
		Email:     email,
	}), nil
}

// SignInEmailVerify exchanges the emailed code for a session. On success
// the result is cached under its session token.
func (c *Client) SignInEmailVerify(ctx context.Context, email, code string) (Result, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	c.freshen(ctx)
	res := c.do(ctx, wire.PathSignInEmailVerify, wire.SignInEmailVerifyRequest{
		ProjectID: c.config.ProjectID,
		Email:     email,
		Code:      code,
	})
	if res.OK() {
		c.cachePut(ctx, res.SessionToken(), res)
	}
	return res, nil
}

// SignInSocial starts a social sign-in with the given provider. The
// result carries no session; nothing is cached.
func (c *Client) SignInSocial(ctx context.Context, socialType string) (Result, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	c.freshen(ctx)
	return c.do(ctx, wire.PathSignInSocial, wire.SignInSocialRequest{
		ProjectID:  c.config.ProjectID,
		SocialType: socialType,
	}), nil
}

// SignInSocialVerify completes a social sign-in. On success the result is
// cached under its session token.
func (c *Client) SignInSocialVerify(ctx context.Context, socialType, code string) (Result, error) {
	if err := c.guard(); err != nil {
		return nil, err
	}
	c.freshen(ctx)
	res := c.do(ctx, wire.PathSignInSocialVerify, wire.SignInSocialVerifyRequest{
		ProjectID:  c.config.ProjectID,
		SocialType: socialType,
		Code:       code,
	})
	if res.OK() {
		c.cachePut(ctx, res.SessionToken(), res)
	}
	return res, nil
}
