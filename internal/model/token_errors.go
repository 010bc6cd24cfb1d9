package model

import "errors"

var (
	// ErrTokenMissing means the Authorization header is absent or does not
	// carry a bearer scheme.
	ErrTokenMissing = errors.New("access token required")
	// ErrTokenInvalid covers malformed tokens and bad signatures.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired means the token is structurally valid but past its horizon.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenStale means the token verified but its user no longer exists.
	// This is how record deletion implicitly revokes outstanding tokens.
	ErrTokenStale = errors.New("invalid token - user not found")
)
