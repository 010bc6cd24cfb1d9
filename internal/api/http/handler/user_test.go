package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umtaldejr/money-tracker-api/internal/password"
	"github.com/umtaldejr/money-tracker-api/internal/repository/memory"
	"github.com/umtaldejr/money-tracker-api/internal/service"
	"github.com/umtaldejr/money-tracker-api/internal/testutil"
	"github.com/umtaldejr/money-tracker-api/internal/token"
)

func newUserFixture(t *testing.T) *User {
	t.Helper()

	svc := service.NewUser(
		memory.NewUserRepository(),
		password.NewCodec(),
		token.NewJWT("test-secret", time.Hour),
		testutil.MakeNoopLogger(),
	)
	return NewUser(svc, testutil.MakeNoopLogger())
}

func TestUser_Create(t *testing.T) {
	t.Parallel()

	h := newUserFixture(t)

	body := `{"name":"John Doe","email":"JOHN@x.com","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "John Doe", payload["name"])
	assert.Equal(t, "john@x.com", payload["email"])
	assert.NotEmpty(t, payload["id"])
	assert.NotContains(t, payload, "password")
	assert.NotContains(t, payload, "passwordHash")
}

func TestUser_Create_ValidationErrors(t *testing.T) {
	t.Parallel()

	h := newUserFixture(t)

	body := `{"name":"J","email":"nope","password":"123"}`
	req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var payload map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Len(t, payload["errors"], 3)
}

func TestUser_Create_InvalidJSON(t *testing.T) {
	t.Parallel()

	h := newUserFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/accounts", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
