package authlink

import (
	"context"
	"errors"
	"testing"

	"github.com/davrx/authlink/cache"
)

func TestBuilderBuild(t *testing.T) {
	c, err := New().
		WithEndpoint("login.example.com").
		WithProjectID("proj-1").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if c == nil {
		t.Fatal("Build() returned nil client")
	}
	if got := c.Config().CacheDuration; got != DefaultCacheDuration {
		t.Fatalf("cache duration = %v, want default %v", got, DefaultCacheDuration)
	}
	if _, ok := c.store.(*cache.Memory); !ok {
		t.Fatalf("store = %T, want *cache.Memory", c.store)
	}
}

func TestBuilderBuildTwice(t *testing.T) {
	b := New().WithEndpoint("login.example.com").WithProjectID("proj-1")

	if _, err := b.Build(); err != nil {
		t.Fatalf("first Build() error = %v", err)
	}
	if _, err := b.Build(); !errors.Is(err, ErrBuilderUsed) {
		t.Fatalf("second Build() error = %v, want ErrBuilderUsed", err)
	}
}

func TestBuilderBuildTwiceAfterFailure(t *testing.T) {
	// A failed Build still consumes the builder; init is one-shot.
	b := New()
	if _, err := b.Build(); !errors.Is(err, ErrEndpointRequired) {
		t.Fatalf("Build() error = %v, want ErrEndpointRequired", err)
	}
	if _, err := b.Build(); !errors.Is(err, ErrBuilderUsed) {
		t.Fatalf("second Build() error = %v, want ErrBuilderUsed", err)
	}
}

func TestBuilderValidation(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *Builder
		wantErr error
	}{
		{
			name:    "missing endpoint",
			build:   func() *Builder { return New().WithProjectID("proj-1") },
			wantErr: ErrEndpointRequired,
		},
		{
			name:    "missing project id",
			build:   func() *Builder { return New().WithEndpoint("login.example.com") },
			wantErr: ErrProjectIDRequired,
		},
		{
			name: "bad cache duration",
			build: func() *Builder {
				return New().
					WithEndpoint("login.example.com").
					WithProjectID("proj-1").
					WithCache(true, 0)
			},
			wantErr: ErrCacheDurationInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.build().Build(); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Build() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuilderCacheDisabled(t *testing.T) {
	c, err := New().
		WithEndpoint("login.example.com").
		WithProjectID("proj-1").
		WithCache(false, 0).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if c.store != nil {
		t.Fatalf("store = %T, want nil with caching disabled", c.store)
	}
}

func TestOperationsBeforeBuild(t *testing.T) {
	ctx := context.Background()

	run := func(t *testing.T, c *Client) {
		t.Helper()
		ops := map[string]func() (Result, error){
			"SignInEmail":        func() (Result, error) { return c.SignInEmail(ctx, "a@b.com") },
			"SignInEmailVerify":  func() (Result, error) { return c.SignInEmailVerify(ctx, "a@b.com", "123456") },
			"SignInSocial":       func() (Result, error) { return c.SignInSocial(ctx, "google") },
			"SignInSocialVerify": func() (Result, error) { return c.SignInSocialVerify(ctx, "google", "code") },
			"SessionInfo":        func() (Result, error) { return c.SessionInfo(ctx, "tok") },
			"SessionRefresh":     func() (Result, error) { return c.SessionRefresh(ctx, "tok") },
			"SessionInvalidate":  func() (Result, error) { return c.SessionInvalidate(ctx, "tok", InvalidateTypeCurrent) },
		}
		for name, op := range ops {
			res, err := op()
			if !errors.Is(err, ErrClientNotReady) {
				t.Fatalf("%s error = %v, want ErrClientNotReady", name, err)
			}
			if res != nil {
				t.Fatalf("%s result = %v, want nil", name, res)
			}
		}
	}

	t.Run("nil client", func(t *testing.T) {
		var c *Client
		run(t, c)
	})
	t.Run("zero client", func(t *testing.T) {
		run(t, &Client{})
	})
}
