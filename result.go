package authlink

import "github.com/davrx/authlink/internal/wire"

// Result is the normalized response payload returned by every operation.
// Server-provided fields are preserved verbatim under their wire names;
// the typed accessors ([Result.Code], [Result.OK], [Result.SessionToken],
// [Result.Email], [Result.Expiration], [Result.RefreshLeft]) cover the
// documented session fields.
type Result = wire.Result

// Error codes carried in the result's error field. The server-defined
// codes pass through verbatim; CodeConnectionError is synthesized by the
// client for any request it could not complete or parse.
const (
	// CodeNoError marks a successful response.
	CodeNoError = wire.CodeNoError
	// CodeConnectionError marks a request that could not be completed.
	CodeConnectionError = wire.CodeConnectionError
	// CodeBadJSON is reported when the server rejected the request body.
	CodeBadJSON = wire.CodeBadJSON
	// CodeProjectNotFound is reported for an unknown project id.
	CodeProjectNotFound = wire.CodeProjectNotFound
	// CodeBadIPAddress is reported when the caller's address is rejected.
	CodeBadIPAddress = wire.CodeBadIPAddress
	// CodeRateLimitReached is reported when the project hit its limits.
	CodeRateLimitReached = wire.CodeRateLimitReached
	// CodeBadEmail is reported for a malformed or unknown email.
	CodeBadEmail = wire.CodeBadEmail
	// CodeBadCode is reported for a wrong or expired verification code.
	CodeBadCode = wire.CodeBadCode
	// CodeBadSocialType is reported for an unsupported social provider.
	CodeBadSocialType = wire.CodeBadSocialType
	// CodeBadSessionToken is reported for an unknown or expired token.
	CodeBadSessionToken = wire.CodeBadSessionToken
	// CodeBadInvalidateType is reported for an unknown invalidate type.
	CodeBadInvalidateType = wire.CodeBadInvalidateType
	// CodeRequestInterval is reported when codes are requested too often.
	CodeRequestInterval = wire.CodeRequestInterval
	// CodeHourlyLimitReached is reported when the hourly code quota is
	// exhausted.
	CodeHourlyLimitReached = wire.CodeHourlyLimitReached
	// CodeEmailProviderError is reported when the server could not send
	// the email.
	CodeEmailProviderError = wire.CodeEmailProviderError
	// CodeOutOfRefresh is reported when a session has no refreshes left.
	CodeOutOfRefresh = wire.CodeOutOfRefresh
	// CodeInternalError is reported for server-side failures.
	CodeInternalError = wire.CodeInternalError
)

// Invalidate types accepted by [Client.SessionInvalidate]. The value is
// passed through verbatim; the server validates it and answers
// bad_invalidate_type for anything it does not recognize.
const (
	// InvalidateTypeCurrent invalidates the presented session only.
	InvalidateTypeCurrent = "current"
	// InvalidateTypeAll invalidates every session of the account.
	InvalidateTypeAll = "all"
)
