// Package apperrors defines the failure kinds surfaced by the service
// layer. Handlers map them to HTTP statuses with errors.Is; nothing is
// retried internally and no error is fatal to the process.
package apperrors

import "errors"

var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrEmptyCart    = errors.New("cart is empty")
)
