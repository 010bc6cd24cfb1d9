package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/umtaldejr/money-tracker-api/internal/model"
)

// Claims represents JWT claims binding a user ID and email.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
	ttl       time.Duration
}

// NewJWT creates a new JWT token manager with the provided secret key and
// token lifetime.
func NewJWT(secretKey string, ttl time.Duration) model.TokenManager {
	return &JWT{secretKey: secretKey, ttl: ttl}
}

// Issue creates a signed token embedding the user ID, email, issue time and
// expiry horizon.
func (j *JWT) Issue(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		UserID: userID,
		Email:  email,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Verify validates the token and extracts the identity it carries.
// Expired tokens and otherwise invalid tokens fail with distinct errors so
// callers can prompt re-login differently.
func (j *JWT) Verify(tokenString string) (model.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.TokenClaims{}, model.ErrTokenExpired
		}
		return model.TokenClaims{}, model.ErrTokenInvalid
	}
	if !token.Valid || claims.UserID == uuid.Nil {
		return model.TokenClaims{}, model.ErrTokenInvalid
	}

	return model.TokenClaims{UserID: claims.UserID, Email: claims.Email}, nil
}
