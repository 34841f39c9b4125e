// Package errors defines the typed errors shared by the service layer and
// the backend client. Callers match them with the Is/As helpers instead of
// string comparison.
package errors

import (
	"errors"
	"fmt"
	"strconv"
)

// UnsupportedActionError is returned when a VM action outside the supported
// set is dispatched. It is raised before any backend call is made.
type UnsupportedActionError struct {
	Action string
}

func (e *UnsupportedActionError) Error() string {
	return fmt.Sprintf("unsupported action: %s", e.Action)
}

func NewUnsupportedActionError(action string) error {
	return &UnsupportedActionError{Action: action}
}

func IsUnsupportedActionError(err error) bool {
	var e *UnsupportedActionError
	return errors.As(err, &e)
}

// BackendError wraps a non-2xx response from the CollabSec backend. Message
// carries the upstream "error" or "message" body field when one was present.
type BackendError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: backend returned %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: backend returned %d", e.Op, e.StatusCode)
}

func NewBackendError(op string, statusCode int, message string) error {
	return &BackendError{Op: op, StatusCode: statusCode, Message: message}
}

// AsBackendError unwraps err to the typed backend error when there is one.
func AsBackendError(err error) (*BackendError, bool) {
	var e *BackendError
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// UnauthorizedError signals that the backend rejected our credentials.
type UnauthorizedError struct {
	Op string
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: unauthorized", e.Op)
}

func NewUnauthorizedError(op string) error {
	return &UnauthorizedError{Op: op}
}

func IsUnauthorizedError(err error) bool {
	var e *UnauthorizedError
	return errors.As(err, &e)
}

// ResourceNotFoundError signals that a named resource does not exist.
type ResourceNotFoundError struct {
	Kind string
	ID   string
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func NewProjectNotFoundError(id int) error {
	return &ResourceNotFoundError{Kind: "project", ID: strconv.Itoa(id)}
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// MalformedResponseError signals a backend response body that did not match
// the documented shape.
type MalformedResponseError struct {
	Op     string
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("%s: malformed response: %s", e.Op, e.Reason)
}

func NewMalformedResponseError(op, reason string) error {
	return &MalformedResponseError{Op: op, Reason: reason}
}

func IsMalformedResponseError(err error) bool {
	var e *MalformedResponseError
	return errors.As(err, &e)
}

// ValidationError reports the first form field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}
