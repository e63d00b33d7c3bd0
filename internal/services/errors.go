package services

import (
	"errors"
	"fmt"
)

// Generic sentinels used by the handlers' error translation.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or missing token")
)

// NotFoundError carries the exact message the API returns with a 404.
type NotFoundError struct {
	Resource string
	Message  string
}

func NewNotFoundError(resource, format string, args ...any) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  fmt.Sprintf(format, args...),
	}
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ConflictError maps to 409; raised on uniqueness violations.
type ConflictError struct {
	Resource string
	Message  string
}

func NewConflictError(resource, format string, args ...any) *ConflictError {
	return &ConflictError{
		Resource: resource,
		Message:  fmt.Sprintf(format, args...),
	}
}

func (e *ConflictError) Error() string {
	return e.Message
}

// BusinessRuleError maps to 400; raised when a request is well-formed but
// violates a domain rule (duplicate save, illegal role transition, ...).
type BusinessRuleError struct {
	Rule    string
	Message string
}

func NewBusinessRuleError(rule, message string) *BusinessRuleError {
	return &BusinessRuleError{Rule: rule, Message: message}
}

func (e *BusinessRuleError) Error() string {
	return e.Message
}

// PermissionError maps to 403.
type PermissionError struct {
	UserPK   uint
	Resource string
	Action   string
	Reason   string
}

func NewPermissionError(userPK uint, resource, action, reason string) *PermissionError {
	return &PermissionError{
		UserPK:   userPK,
		Resource: resource,
		Action:   action,
		Reason:   reason,
	}
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: %s %s (%s)", e.Action, e.Resource, e.Reason)
}

func (e *PermissionError) Unwrap() error {
	return ErrForbidden
}
