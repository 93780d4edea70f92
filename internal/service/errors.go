package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrTokenIsExpiredOrInvalid is the single error returned for every
	// token validation failure: bad signature, malformed payload, missing
	// subject, wrong issuer, or past expiry. The kinds are deliberately not
	// distinguished so callers leak no structural information.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
