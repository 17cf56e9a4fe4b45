// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Owner-related errors
	ErrOwnerNotFound = errors.New("owner not found")

	// Office-related errors
	ErrOfficeNotFound = errors.New("office not found")
	ErrNotAnOwner     = errors.New("owner is not associated with this office")

	// Employee-related errors
	ErrEmployeeNotFound = errors.New("employee not found")

	// Report-related errors
	ErrReportNotFound      = errors.New("report not found")
	ErrInvalidRelationship = errors.New("selected office does not belong to the owner")
)

// ValidationError carries per-field messages so the caller can surface
// them next to the offending form fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
