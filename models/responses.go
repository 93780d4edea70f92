package models

// MessageResponse is the generic acknowledgement body returned by
// endpoints that create a resource without echoing it back
// (registration, salary creation).
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by POST /login on successful authentication.
type TokenResponse struct {
	// AccessToken is the compact signed JWT to be presented in the
	// Authorization header of subsequent requests.
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`
}

// ErrorResponse is the uniform error body for all failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
