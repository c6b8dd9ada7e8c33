// services/errors.go
package services

import (
	"errors"
	"fmt"
)

// Error kinds of the booking engine. Callers match them with errors.Is and
// show OperationError.Message to the user as-is.
var (
	ErrInvalidReference = errors.New("invalid_reference")
	ErrMissingDates     = errors.New("missing_dates")
	ErrInvalidDateRange = errors.New("invalid_date_range")
	ErrRoomUnavailable  = errors.New("room_unavailable")
	ErrNotFound         = errors.New("not_found")
	ErrValidation       = errors.New("validation_failed")
)

// OperationError pairs an error kind with a human-readable message that is
// sufficient to explain the fix (which dates conflict, which field is missing).
type OperationError struct {
	Kind    error
	Message string
}

func (e *OperationError) Error() string { return e.Message }

func (e *OperationError) Unwrap() error { return e.Kind }

func opErr(kind error, format string, args ...interface{}) error {
	return &OperationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
