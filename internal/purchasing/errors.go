package purchasing

import (
	"errors"
	"fmt"

	"purchasing-service/internal/model"
)

// Error kinds surfaced to the handler layer. Wrap these with
// fmt.Errorf("%w: ...") so callers can classify with errors.Is.
var (
	// ErrNotFound means the purchase order, supplier, location or line
	// item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation means the request was malformed or missing required
	// fields. Returned before any mutation.
	ErrValidation = errors.New("validation failed")

	// ErrStateConflict means the operation is illegal for the purchase
	// order's current status, including losing an optimistic-concurrency
	// race. The order is left unchanged.
	ErrStateConflict = errors.New("state conflict")
)

// ConflictError reports an illegal transition attempt, carrying the
// order's actual current status so the caller can refresh and retry.
type ConflictError struct {
	PurchaseOrderID uint
	CurrentStatus   model.POStatus
	Event           TransitionEvent
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("purchase order %d: cannot %s while %s",
		e.PurchaseOrderID, e.Event, e.CurrentStatus)
}

func (e *ConflictError) Unwrap() error { return ErrStateConflict }

func conflict(poID uint, current model.POStatus, event TransitionEvent) error {
	return &ConflictError{PurchaseOrderID: poID, CurrentStatus: current, Event: event}
}
