package service

import (
	"errors"
	"fmt"
)

// Business errors surfaced to the HTTP layer. None of these are retried
// by the core; writes are never auto-retried because replay could
// double-apply a movement.
var (
	// ErrNotFound — referenced product/supplier/order/recipe does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientStock — a decrementing movement would drive stock
	// negative. Checked before any write occurs.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidStateTransition — amendment attempted on a delivered or
	// cancelled order.
	ErrInvalidStateTransition = errors.New("order can no longer be modified")
	// ErrInsufficientPayment — amount paid does not cover the total.
	ErrInsufficientPayment = errors.New("amount paid is less than total")
)

// ValidationError marks malformed input the caller must fix; it is never
// retried automatically.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// persistencef wraps a store failure. Internal detail is logged at the
// boundary, never exposed to the external caller.
func persistencef(op string, err error) error {
	return fmt.Errorf("persistence: %s: %w", op, err)
}
