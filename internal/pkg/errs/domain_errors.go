package errs

import (
	"errors"
	"fmt"
)

// Error kinds shared by the domain, usecase and handler layers.
// Concrete errors below match their kind with errors.Is.
var (
	ErrNotFound      = errors.New("not found")
	ErrAuthorization = errors.New("not authorized")
	ErrValidation    = errors.New("validation failed")
)

type EntityKind string

const (
	KindTenant      EntityKind = "Tenant"
	KindFlat        EntityKind = "Flat"
	KindReservation EntityKind = "Reservation"
)

type NotFoundError struct {
	Kind EntityKind
	ID   fmt.Stringer
}

func NewNotFound(kind EntityKind, id fmt.Stringer) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id = %s is not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AuthorizationError means the acting tenant lacks the relationship the
// requested transition needs (owner, occupant, or not-the-owner).
type AuthorizationError struct {
	Reason string
}

func NewAuthorization(reason string) *AuthorizationError {
	return &AuthorizationError{Reason: reason}
}

func (e *AuthorizationError) Error() string {
	if e.Reason == "" {
		return ErrAuthorization.Error()
	}
	return ErrAuthorization.Error() + ": " + e.Reason
}

func (e *AuthorizationError) Is(target error) bool {
	return target == ErrAuthorization
}

type ValidationError struct {
	Reason string
}

func NewValidation(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
