package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpctx "github.com/umtaldejr/money-tracker-api/internal/api/http/context"
	"github.com/umtaldejr/money-tracker-api/internal/model"
	"github.com/umtaldejr/money-tracker-api/internal/repository/memory"
	"github.com/umtaldejr/money-tracker-api/internal/testutil"
	"github.com/umtaldejr/money-tracker-api/internal/token"
)

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	store := memory.NewUserRepository()
	user, err := store.Create(context.Background(), model.User{Name: "John", Email: "john@x.com"})
	require.NoError(t, err)

	manager := token.NewJWT("secret", time.Hour)
	validToken, err := manager.Issue(user.ID, user.Email)
	require.NoError(t, err)

	expiredManager := token.NewJWT("secret", -time.Minute)
	expiredToken, err := expiredManager.Issue(user.ID, user.Email)
	require.NoError(t, err)

	staleToken, err := manager.Issue(uuid.New(), "ghost@x.com")
	require.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantNext   bool
	}{
		{name: "missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", authHeader: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", authHeader: "Bearer garbage", wantStatus: http.StatusUnauthorized},
		{name: "expired token", authHeader: "Bearer " + expiredToken, wantStatus: http.StatusUnauthorized},
		{name: "stale token for deleted user", authHeader: "Bearer " + staleToken, wantStatus: http.StatusUnauthorized},
		{name: "valid token", authHeader: "Bearer " + validToken, wantStatus: http.StatusOK, wantNext: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cm := httpctx.NewManager()
			m := NewAuthenticate(manager, store, cm, testutil.MakeNoopLogger())

			nextCalled := false
			var callerID uuid.UUID
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				callerID, _ = cm.GetUserIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			m.Handle(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantNext {
				assert.Equal(t, user.ID, callerID)
			}
		})
	}
}

func TestAuthenticate_DistinctTokenErrors(t *testing.T) {
	t.Parallel()

	store := memory.NewUserRepository()
	manager := token.NewJWT("secret", -time.Minute)

	expiredToken, err := manager.Issue(uuid.New(), "john@x.com")
	require.NoError(t, err)

	cm := httpctx.NewManager()
	m := NewAuthenticate(token.NewJWT("secret", time.Hour), store, cm, testutil.MakeNoopLogger())
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	req.Header.Set("Authorization", "Bearer "+expiredToken)
	rec := httptest.NewRecorder()
	m.Handle(next).ServeHTTP(rec, req)
	assert.Contains(t, rec.Body.String(), model.ErrTokenExpired.Error())

	req = httptest.NewRequest(http.MethodGet, "/accounts", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	m.Handle(next).ServeHTTP(rec, req)
	assert.Contains(t, rec.Body.String(), model.ErrTokenInvalid.Error())
}
