package authlink

import (
	"strings"
	"time"
)

// Config defines the client configuration.
//
// Config instances are intended to be set once during construction and
// treated as immutable afterwards; [Builder.Build] copies the value and
// the client never mutates it.
type Config struct {
	// Endpoint is the login service host, as host or host:port, without a
	// scheme. Requests go to https://{Endpoint}{path}.
	Endpoint string

	// ProjectID identifies the project on the login service and is sent
	// with every request.
	ProjectID string

	// CacheEnabled turns the session cache on. Enabled by default.
	CacheEnabled bool

	// CacheDuration is the span of the cache expiration window. All
	// cached entries expire together when the window lapses.
	CacheDuration time.Duration

	// RequestTimeout bounds each HTTP request. Zero means no
	// client-imposed timeout; calls then run until the transport or the
	// caller's context gives up.
	RequestTimeout time.Duration
}

// DefaultCacheDuration is the cache window applied when the builder is not
// told otherwise.
const DefaultCacheDuration = 30 * time.Second

func defaultConfig() Config {
	return Config{
		CacheEnabled:  true,
		CacheDuration: DefaultCacheDuration,
	}
}

// Validate checks the configuration for use. It is called by
// [Builder.Build]; callers constructing a Config by hand can use it to
// fail early.
func (c Config) Validate() error {
	endpoint := strings.TrimSpace(c.Endpoint)
	if endpoint == "" {
		return ErrEndpointRequired
	}
	if strings.Contains(endpoint, "://") || strings.Contains(endpoint, "/") {
		return ErrEndpointInvalid
	}
	if strings.TrimSpace(c.ProjectID) == "" {
		return ErrProjectIDRequired
	}
	if c.CacheEnabled && c.CacheDuration <= 0 {
		return ErrCacheDurationInvalid
	}
	if c.RequestTimeout < 0 {
		return ErrRequestTimeoutInvalid
	}
	return nil
}
