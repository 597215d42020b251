package wire

// Result is a normalized response payload. Every server-provided field is
// preserved verbatim under its wire name; the typed accessors below cover
// the fields the client itself branches on. The zero/nil Result reads as
// an empty payload.
type Result map[string]any

// ConnectionError builds the uniform result returned for any request that
// could not be completed or parsed.
func ConnectionError() Result {
	return Result{FieldError: CodeConnectionError}
}

// Code returns the error field, or an empty string when absent.
func (r Result) Code() string {
	s, _ := r[FieldError].(string)
	return s
}

// OK reports whether the response carries the success code.
func (r Result) OK() bool {
	return r.Code() == CodeNoError
}

// SessionToken returns the session_token field, or "" when absent.
func (r Result) SessionToken() string {
	s, _ := r[FieldSessionToken].(string)
	return s
}

// Email returns the email field, or "" when absent.
func (r Result) Email() string {
	s, _ := r[FieldEmail].(string)
	return s
}

// Expiration returns the expiration field as a Unix timestamp, or 0 when
// absent.
func (r Result) Expiration() int64 {
	return r.int64Field(FieldExpiration)
}

// RefreshLeft returns the refresh_left counter, or 0 when absent.
func (r Result) RefreshLeft() int64 {
	return r.int64Field(FieldRefreshLeft)
}

// int64Field reads a numeric field. encoding/json decodes numbers into
// float64, but cached results re-marshalled by other stores may carry
// integer types as well.
func (r Result) int64Field(name string) int64 {
	switch v := r[name].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	default:
		return 0
	}
}
