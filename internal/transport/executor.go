package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/davrx/authlink/internal/wire"
)

const userAgent = "authlink-go"

// Executor issues JSON POST requests against a fixed base URL and
// normalizes every outcome into a wire.Result.
type Executor struct {
	baseURL string
	client  *req.Client
	log     zerolog.Logger
}

// NewHTTPClient builds the shared req client used by the executor. A zero
// timeout leaves the call bounded only by the caller's context and the
// underlying transport.
func NewHTTPClient(timeout time.Duration) *req.Client {
	client := req.C().
		SetUserAgent(userAgent)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return client
}

// New creates an Executor posting to baseURL (scheme included, no trailing
// slash).
func New(baseURL string, client *req.Client, log zerolog.Logger) *Executor {
	return &Executor{
		baseURL: baseURL,
		client:  client,
		log:     log,
	}
}

// Post sends body as a JSON POST to baseURL+path and returns the
// normalized response payload. A 200 response gains error="no_error" when
// the server left the error field out; a non-200 response passes through
// only when it is valid JSON carrying a top-level error field. Every other
// outcome is connection_error.
func (e *Executor) Post(ctx context.Context, path string, body any) wire.Result {
	payload, err := json.Marshal(body)
	if err != nil {
		e.log.Warn().Str("path", path).Err(err).Msg("request body not serializable")
		return wire.ConnectionError()
	}

	requestID := uuid.NewString()
	start := time.Now()

	resp, err := e.client.R().
		SetContext(ctx).
		SetContentType("application/json").
		SetHeader("X-Request-ID", requestID).
		SetBodyBytes(payload).
		Post(e.baseURL + path)
	if err != nil {
		e.log.Warn().
			Str("path", path).
			Str("request_id", requestID).
			Err(err).
			Msg("request failed")
		return wire.ConnectionError()
	}

	e.log.Debug().
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request complete")

	return e.normalize(path, resp.StatusCode, resp.Bytes())
}

func (e *Executor) normalize(path string, status int, raw []byte) wire.Result {
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		e.log.Warn().Str("path", path).Int("status", status).Msg("unparseable response body")
		return wire.ConnectionError()
	}

	hasError := gjson.GetBytes(raw, wire.FieldError).Exists()

	switch {
	case status == http.StatusOK && !hasError:
		injected, err := sjson.SetBytes(raw, wire.FieldError, wire.CodeNoError)
		if err != nil {
			return wire.ConnectionError()
		}
		raw = injected
	case status != http.StatusOK && !hasError:
		e.log.Warn().Str("path", path).Int("status", status).Msg("unexpected status without error field")
		return wire.ConnectionError()
	}

	var out wire.Result
	if err := json.Unmarshal(raw, &out); err != nil {
		return wire.ConnectionError()
	}
	return out
}
