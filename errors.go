package authlink

import "errors"

var (
	// ErrBuilderUsed is returned by Build when the builder has already
	// produced a client. Initialization happens once per builder.
	ErrBuilderUsed = errors.New("builder already used")
	// ErrClientNotReady is returned by every operation invoked on a nil
	// or hand-constructed client that never went through Build.
	ErrClientNotReady = errors.New("client not initialized")
	// ErrEndpointRequired is returned when the endpoint is empty.
	ErrEndpointRequired = errors.New("endpoint required")
	// ErrEndpointInvalid is returned when the endpoint is not a bare
	// host[:port].
	ErrEndpointInvalid = errors.New("endpoint must be host[:port] without scheme or path")
	// ErrProjectIDRequired is returned when the project id is empty.
	ErrProjectIDRequired = errors.New("project id required")
	// ErrCacheDurationInvalid is returned when caching is enabled with a
	// non-positive window.
	ErrCacheDurationInvalid = errors.New("cache duration must be positive when caching is enabled")
	// ErrRequestTimeoutInvalid is returned for negative request timeouts.
	ErrRequestTimeoutInvalid = errors.New("request timeout must not be negative")
)
