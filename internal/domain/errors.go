package domain

import (
	"errors"
	"fmt"
)

// ErrorCode is the machine-readable code returned in the response
// envelope. Internal store errors are never exposed; they map to
// CodeInternal with a generic message.
type ErrorCode string

const (
	CodeValidation        ErrorCode = "validation_error"
	CodeNotFound          ErrorCode = "not_found"
	CodeCapacityExceeded  ErrorCode = "capacity_exceeded"
	CodeSlotInactive      ErrorCode = "slot_inactive"
	CodeInvalidTransition ErrorCode = "invalid_status_transition"
	CodeForeignKey        ErrorCode = "foreign_key_violation"
	CodeInternal          ErrorCode = "internal"
)

type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrSlotNotFound     = &Error{Code: CodeNotFound, Message: "time slot not found"}
	ErrOrderNotFound    = &Error{Code: CodeNotFound, Message: "order not found"}
	ErrTruckNotFound    = &Error{Code: CodeNotFound, Message: "food truck not found"}
	ErrHoursNotFound    = &Error{Code: CodeNotFound, Message: "operating hours entry not found"}
	ErrCapacityExceeded = &Error{Code: CodeCapacityExceeded, Message: "time slot is fully booked"}
	ErrSlotInactive     = &Error{Code: CodeSlotInactive, Message: "time slot is not active"}
	ErrSlotHasOrders    = &Error{Code: CodeValidation, Message: "time slot has referencing orders and cannot be deleted"}
	ErrEmptyCart        = &Error{Code: CodeValidation, Message: "cart is empty"}
)

func NewValidationError(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NewTransitionError(from, to OrderStatus) *Error {
	return &Error{
		Code:    CodeInvalidTransition,
		Message: fmt.Sprintf("cannot transition order from %s to %s", from, to),
	}
}

func NewForeignKeyError(field string) *Error {
	return &Error{Code: CodeForeignKey, Message: "invalid " + field}
}

// CodeOf extracts the domain code from any error chain.
func CodeOf(err error) ErrorCode {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
