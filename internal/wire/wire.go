package wire

// Request paths. Every operation is a JSON POST to one of these.
const (
	PathSignInEmail        = "/signin/email"
	PathSignInEmailVerify  = "/signin/emailverify"
	PathSignInSocial       = "/signin/social"
	PathSignInSocialVerify = "/signin/socialverify"
	PathSessionInfo        = "/session/info"
	PathSessionRefresh     = "/session/refresh"
	PathSessionInvalidate  = "/session/invalidate"
)

// Error codes carried in the "error" response field. All but CodeNoError
// and CodeConnectionError originate on the server and are passed through
// verbatim.
const (
	// CodeNoError marks a successful response. The transport injects it
	// into 200 responses that omit the error field.
	CodeNoError = "no_error"

	// CodeConnectionError is synthesized by the client whenever a request
	// could not be completed or its response could not be parsed. It never
	// comes from the server.
	CodeConnectionError = "connection_error"

	CodeBadJSON            = "bad_json"
	CodeProjectNotFound    = "project_not_found"
	CodeBadIPAddress       = "bad_ip_address"
	CodeRateLimitReached   = "rate_limit_reached"
	CodeBadEmail           = "bad_email"
	CodeBadCode            = "bad_code"
	CodeBadSocialType      = "bad_social_type"
	CodeBadSessionToken    = "bad_session_token"
	CodeBadInvalidateType  = "bad_invalidate_type"
	CodeRequestInterval    = "code_request_interval_reached"
	CodeHourlyLimitReached = "code_hourly_limit_reached"
	CodeEmailProviderError = "email_provider_error"
	CodeOutOfRefresh       = "out_of_refresh"
	CodeInternalError      = "internal_error"
)

// Response field names shared by the session-bearing responses.
const (
	FieldError        = "error"
	FieldEmail        = "email"
	FieldExpiration   = "expiration"
	FieldRefreshLeft  = "refresh_left"
	FieldSessionToken = "session_token"
)

// SignInEmailRequest is the body of POST /signin/email.
type SignInEmailRequest struct {
	ProjectID string `json:"project_id"`
	Email     string `json:"email"`
}

// SignInEmailVerifyRequest is the body of POST /signin/emailverify.
type SignInEmailVerifyRequest struct {
	ProjectID string `json:"project_id"`
	Email     string `json:"email"`
	Code      string `json:"code"`
}

// SignInSocialRequest is the body of POST /signin/social.
type SignInSocialRequest struct {
	ProjectID  string `json:"project_id"`
	SocialType string `json:"social_type"`
}

// SignInSocialVerifyRequest is the body of POST /signin/socialverify.
type SignInSocialVerifyRequest struct {
	ProjectID  string `json:"project_id"`
	SocialType string `json:"social_type"`
	Code       string `json:"code"`
}

// SessionRequest is the body of POST /session/info and /session/refresh.
type SessionRequest struct {
	ProjectID    string `json:"project_id"`
	SessionToken string `json:"session_token"`
}

// SessionInvalidateRequest is the body of POST /session/invalidate.
type SessionInvalidateRequest struct {
	ProjectID      string `json:"project_id"`
	SessionToken   string `json:"session_token"`
	InvalidateType string `json:"invalidate_type"`
}
