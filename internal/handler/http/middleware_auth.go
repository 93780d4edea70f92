package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/atereshkin/staffdir/internal/logger"
	"github.com/atereshkin/staffdir/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], resolves the token
// subject to a persisted user via [service.AuthService.ResolveUser], and — on
// success — stores the authenticated user in the request context under
// [utils.CurrentUserCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value cannot be parsed as a bearer token
//     ([ErrInvalidAuthorizationHeader] or [ErrEmptyToken]).
//   - The token is expired, malformed, or carries a bad signature.
//   - The token subject no longer resolves to an existing user.
//
// The response body is the same generic message for every rejection so that
// callers cannot distinguish a bad token from a deleted account. Details are
// logged server-side via the context-scoped logger from [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSONError(w, authenticationFailedMessage, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSONError(w, authenticationFailedMessage, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteJSONError(w, authenticationFailedMessage, http.StatusUnauthorized)
			return
		}

		currentUser, err := h.services.AuthService.ResolveUser(ctx, token.Subject)
		if err != nil {
			log.Err(err).Str("subject", token.Subject).Msg("token subject did not resolve to a user")
			utils.WriteJSONError(w, authenticationFailedMessage, http.StatusUnauthorized)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.CurrentUserCtxKey, currentUser)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authenticationFailedMessage is the single body returned for every 401.
// Deliberately generic to avoid account enumeration.
const authenticationFailedMessage = "authentication failed"

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
