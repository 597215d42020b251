package authlink

import (
	"strings"
	"time"

	"github.com/imroc/req/v3"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/davrx/authlink/cache"
	"github.com/davrx/authlink/internal/transport"
)

const defaultRedisPrefix = "authlink"

// Builder assembles a [Client]. Configure it with the With* methods and
// call [Builder.Build] exactly once; a second Build fails with
// [ErrBuilderUsed].
type Builder struct {
	config Config

	redis       *redis.Client
	redisPrefix string

	logger    zerolog.Logger
	loggerSet bool

	httpClient *req.Client

	metricsEnabled bool

	built bool
}

// New creates a Builder with defaults: caching enabled with a 30 second
// window, no request timeout, no logging, metrics off.
func New() *Builder {
	return &Builder{
		config:      defaultConfig(),
		redisPrefix: defaultRedisPrefix,
	}
}

// WithConfig replaces the whole configuration at once.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithEndpoint sets the login service host, as host or host:port.
func (b *Builder) WithEndpoint(endpoint string) *Builder {
	b.config.Endpoint = endpoint
	return b
}

// WithProjectID sets the project identifier sent with every request.
func (b *Builder) WithProjectID(projectID string) *Builder {
	b.config.ProjectID = projectID
	return b
}

// WithCache sets the cache policy. Disabling the cache makes every
// session lookup go to the server.
func (b *Builder) WithCache(enabled bool, duration time.Duration) *Builder {
	b.config.CacheEnabled = enabled
	b.config.CacheDuration = duration
	return b
}

// WithRequestTimeout bounds each HTTP request. Zero leaves calls bounded
// only by the caller's context and the transport.
func (b *Builder) WithRequestTimeout(timeout time.Duration) *Builder {
	b.config.RequestTimeout = timeout
	return b
}

// WithRedis switches the session cache to a shared Redis backend. Without
// it the client uses a per-process in-memory cache.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithRedisPrefix overrides the key namespace used by the Redis cache.
func (b *Builder) WithRedisPrefix(prefix string) *Builder {
	b.redisPrefix = prefix
	return b
}

// WithLogger attaches a zerolog logger. The client logs requests at debug
// level and connection failures at warn level; without a logger nothing
// is written.
func (b *Builder) WithLogger(log zerolog.Logger) *Builder {
	b.logger = log
	b.loggerSet = true
	return b
}

// WithHTTPClient replaces the underlying req client, for callers that
// need proxies, custom TLS, or instrumented transports.
func (b *Builder) WithHTTPClient(client *req.Client) *Builder {
	b.httpClient = client
	return b
}

// WithMetricsEnabled turns the in-process counters on.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.metricsEnabled = enabled
	return b
}

// Build validates the configuration and constructs the client.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, ErrBuilderUsed
	}
	b.built = true

	cfg := b.config
	cfg.Endpoint = strings.TrimSpace(cfg.Endpoint)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := zerolog.Nop()
	if b.loggerSet {
		log = b.logger
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = transport.NewHTTPClient(cfg.RequestTimeout)
	}

	var store cache.Store
	if cfg.CacheEnabled {
		if b.redis != nil {
			store = cache.NewRedis(b.redis, b.redisPrefix, cfg.CacheDuration)
		} else {
			store = cache.NewMemory(cfg.CacheDuration)
		}
	}

	return &Client{
		config:  cfg,
		exec:    transport.New("https://"+cfg.Endpoint, httpClient, log),
		store:   store,
		metrics: newMetrics(b.metricsEnabled),
		log:     log,
		ready:   true,
	}, nil
}
