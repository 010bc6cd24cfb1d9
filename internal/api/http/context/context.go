// Package context carries the authenticated caller's identity on request
// contexts, behind the model.ContextManager contract.
package context

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

// userIDKey is the context key under which the caller's user ID is stored.
const userIDKey ctxKey = "user_id"

// Manager sets and retrieves user IDs on request contexts.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserIDToContext returns a child context carrying the user ID.
func (m *Manager) SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the user ID set by an earlier
// SetUserIDToContext. The second return reports whether one was present.
func (m *Manager) GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
