package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a requested entity does not exist or must not be revealed.
	ErrNotFound = errors.New("not found")
	// ErrInvalidToken covers missing, expired, tampered and mistyped tokens alike.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrInvalidCredentials is returned on password or email confirmation mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserInactive is returned when a deactivated account attempts an action.
	ErrUserInactive = errors.New("user is inactive")
	// ErrEmailNotConfirmed is returned when an account signs in before confirming its email.
	ErrEmailNotConfirmed = errors.New("email is not confirmed")
	// ErrAlreadyConfirmed is returned when an email is confirmed twice.
	ErrAlreadyConfirmed = errors.New("email is already confirmed")
	// ErrInvalidRole is returned for unknown role names.
	ErrInvalidRole = errors.New("invalid role")
	// ErrUserConflict is the kind behind ConflictError.
	ErrUserConflict = errors.New("user conflict")
	// ErrBadProvidedData is the kind behind BadProvidedDataError.
	ErrBadProvidedData = errors.New("bad provided data")
	// ErrPermissionDenied is the kind behind PermissionDeniedError.
	ErrPermissionDenied = errors.New("permission denied")
)

// FieldErrors maps a field name to a human readable problem.
type FieldErrors map[string]string

func (f FieldErrors) String() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+f[k])
	}
	return strings.Join(parts, "; ")
}

// ConflictError reports every uniqueness violation of a create request at once.
type ConflictError struct {
	Fields FieldErrors
}

// NewConflictError creates a ConflictError.
func NewConflictError(fields FieldErrors) *ConflictError {
	return &ConflictError{Fields: fields}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUserConflict, e.Fields)
}

func (e *ConflictError) Unwrap() error {
	return ErrUserConflict
}

// BadProvidedDataError reports structural input problems per field.
type BadProvidedDataError struct {
	Fields FieldErrors
}

// NewBadProvidedDataError creates a BadProvidedDataError.
func NewBadProvidedDataError(fields FieldErrors) *BadProvidedDataError {
	return &BadProvidedDataError{Fields: fields}
}

func (e *BadProvidedDataError) Error() string {
	return fmt.Sprintf("%s: %s", ErrBadProvidedData, e.Fields)
}

func (e *BadProvidedDataError) Unwrap() error {
	return ErrBadProvidedData
}

// PermissionDeniedError is a role policy refusal.
type PermissionDeniedError struct {
	// Reason is a stable machine readable code.
	Reason string
	// Message is safe to show to the caller.
	Message string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrPermissionDenied, e.Message)
}

func (e *PermissionDeniedError) Unwrap() error {
	return ErrPermissionDenied
}
