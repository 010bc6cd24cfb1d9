package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/umtaldejr/money-tracker-api/internal/api/http/response"
	"github.com/umtaldejr/money-tracker-api/internal/logger"
	"github.com/umtaldejr/money-tracker-api/internal/model"
)

const bearerPrefix = "Bearer "

// Authenticate resolves caller identity from bearer tokens and injects it
// into the request context. A structurally valid token whose user no longer
// exists is rejected: deleting a record revokes its outstanding tokens.
type Authenticate struct {
	tokenManager   model.TokenManager
	userStore      model.UserStore
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenManager model.TokenManager, userStore model.UserStore, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		tokenManager:   tokenManager,
		userStore:      userStore,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle parses the Authorization header, verifies the token, confirms the
// encoded user still resolves in the store, and passes the request on with
// the caller's ID in context.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := m.authenticate(r)
		if err != nil {
			response.DomainError(w, m.logger, err)
			return
		}

		ctx := m.contextManager.SetUserIDToContext(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) authenticate(r *http.Request) (uuid.UUID, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
		return uuid.Nil, model.ErrTokenMissing
	}

	claims, err := m.tokenManager.Verify(strings.TrimPrefix(authHeader, bearerPrefix))
	if err != nil {
		return uuid.Nil, err
	}

	if _, err := m.userStore.GetByID(r.Context(), claims.UserID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return uuid.Nil, model.ErrTokenStale
		}
		return uuid.Nil, err
	}

	return claims.UserID, nil
}
