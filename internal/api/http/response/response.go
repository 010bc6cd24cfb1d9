// Package response writes JSON payloads and maps domain errors to HTTP
// statuses. It is shared by handlers and middleware so every error body has
// the same shape.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/umtaldejr/money-tracker-api/internal/logger"
	"github.com/umtaldejr/money-tracker-api/internal/model"
)

const contentTypeJSON = "application/json; charset=utf-8"

// genericErrorMessage is the only text internal failures ever surface to a
// client; full detail stays in the server log.
const genericErrorMessage = "Something went wrong!"

// JSON writes payload with the given status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", contentTypeJSON)

	body, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + genericErrorMessage + `"}`))
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// Error writes {"error": message} with the given status.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// DomainError maps a domain error to its HTTP status and writes it.
// Validation failures carry the full list of violated rules; anything outside
// the taxonomy becomes a generic 500 and is logged server-side.
func DomainError(w http.ResponseWriter, log *logger.Logger, err error) {
	var vErr *model.ValidationError
	if errors.As(err, &vErr) {
		JSON(w, http.StatusBadRequest, map[string][]string{"errors": vErr.Errors})
		return
	}

	switch {
	case errors.Is(err, model.ErrEmailTaken):
		Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrInvalidCredentials),
		errors.Is(err, model.ErrTokenMissing),
		errors.Is(err, model.ErrTokenInvalid),
		errors.Is(err, model.ErrTokenExpired),
		errors.Is(err, model.ErrTokenStale):
		Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, model.ErrAccessDenied):
		Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, model.ErrMalformedID):
		Error(w, http.StatusBadRequest, err.Error())
	default:
		log.Error("unexpected error", "error", err.Error())
		Error(w, http.StatusInternalServerError, genericErrorMessage)
	}
}
