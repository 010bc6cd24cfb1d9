package model

import "github.com/google/uuid"

// TokenManager issues and verifies signed bearer tokens.
type TokenManager interface {
	Issue(userID uuid.UUID, email string) (string, error)
	Verify(token string) (TokenClaims, error)
}

// TokenClaims is the identity a verified token resolves to.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}
