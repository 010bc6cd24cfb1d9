package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	httpctx "github.com/umtaldejr/money-tracker-api/internal/api/http/context"
	"github.com/umtaldejr/money-tracker-api/internal/testutil"
)

func TestRequireOwner_Handle(t *testing.T) {
	t.Parallel()

	callerID := uuid.New()

	tests := []struct {
		name          string
		pathID        string
		authenticated bool
		wantStatus    int
	}{
		{name: "caller owns record", pathID: callerID.String(), authenticated: true, wantStatus: http.StatusOK},
		{name: "different record", pathID: uuid.NewString(), authenticated: true, wantStatus: http.StatusForbidden},
		{name: "nonexistent but foreign id still denied", pathID: uuid.NewString(), authenticated: true, wantStatus: http.StatusForbidden},
		{name: "no caller in context", pathID: callerID.String(), authenticated: false, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cm := httpctx.NewManager()
			m := NewRequireOwner(cm, testutil.MakeNoopLogger())

			r := chi.NewRouter()
			r.With(m.Handle).Get("/accounts/{id}", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/accounts/"+tt.pathID, nil)
			if tt.authenticated {
				req = req.WithContext(cm.SetUserIDToContext(req.Context(), callerID))
			}
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestValidateID_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pathID     string
		wantStatus int
	}{
		{name: "valid uuid", pathID: uuid.NewString(), wantStatus: http.StatusOK},
		{name: "malformed id", pathID: "123", wantStatus: http.StatusBadRequest},
		{name: "almost a uuid", pathID: "123e4567-e89b-12d3-a456-42661417400Z", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewValidateID(testutil.MakeNoopLogger())

			r := chi.NewRouter()
			r.With(m.Handle).Get("/accounts/{id}", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/accounts/"+tt.pathID, nil)
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
