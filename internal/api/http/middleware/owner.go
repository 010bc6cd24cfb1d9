package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/umtaldejr/money-tracker-api/internal/api/http/response"
	"github.com/umtaldejr/money-tracker-api/internal/logger"
	"github.com/umtaldejr/money-tracker-api/internal/model"
)

// URLParamID is the chi route parameter naming the target record.
const URLParamID = "id"

// RequireOwner denies any request whose authenticated caller is not the user
// named in the path. Strict same-value comparison; an absent caller or an
// absent path ID is a denial, never a match. Must run after Authenticate so
// unauthenticated callers get 401 rather than 403.
type RequireOwner struct {
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewRequireOwner creates a new RequireOwner middleware instance.
func NewRequireOwner(contextManager model.ContextManager, logger *logger.Logger) *RequireOwner {
	return &RequireOwner{contextManager: contextManager, logger: logger}
}

// Handle compares the context caller ID against the path ID.
func (m *RequireOwner) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := m.contextManager.GetUserIDFromContext(r.Context())
		if !ok {
			response.DomainError(w, m.logger, model.ErrAccessDenied)
			return
		}

		targetID, err := uuid.Parse(chi.URLParam(r, URLParamID))
		if err != nil || targetID != callerID {
			response.DomainError(w, m.logger, model.ErrAccessDenied)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ValidateID rejects syntactically malformed path identifiers with 400
// before any authentication work runs.
type ValidateID struct {
	logger *logger.Logger
}

// NewValidateID creates a new ValidateID middleware instance.
func NewValidateID(logger *logger.Logger) *ValidateID {
	return &ValidateID{logger: logger}
}

// Handle parses the path ID as a UUID and fails fast when it is not one.
func (m *ValidateID) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := uuid.Parse(chi.URLParam(r, URLParamID)); err != nil {
			response.DomainError(w, m.logger, model.ErrMalformedID)
			return
		}

		next.ServeHTTP(w, r)
	})
}
