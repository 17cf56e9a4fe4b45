// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fieldstonehq/fieldstone/internal/domain"
	"github.com/fieldstonehq/fieldstone/internal/middleware"
	"github.com/fieldstonehq/fieldstone/internal/scope"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	BaseResponse
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// authContext extracts the authenticated requester placed in the request
// context by the auth middleware.
func authContext(r *http.Request) (scope.AuthContext, bool) {
	raw, _ := r.Context().Value(middleware.UserIDKey).(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		return scope.AuthContext{}, false
	}
	return scope.AuthContext{UserID: userID}, true
}

// handleError maps domain errors onto HTTP responses. Unauthorized always
// means the entity exists but is outside the requester's scope; nothing
// was mutated.
func handleError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, domain.ErrOwnerNotFound),
		errors.Is(err, domain.ErrOfficeNotFound),
		errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrReportNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrNotAnOwner):
		respondWithError(w, http.StatusBadRequest, "Owner is not associated with this office")
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		respondWithError(w, http.StatusConflict, "Email already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
