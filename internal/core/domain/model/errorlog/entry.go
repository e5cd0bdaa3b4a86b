// Package errorlog provides the append-only diagnostic records written
// when an operation is rejected or a background run fails. Entries are
// never updated or deleted.
package errorlog

import (
	"errors"
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created
// through NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Operation names recorded with each entry. They identify which order
// operation was rejected or failed.
const (
	OperationPlaceOrder    = "PLACE_ORDER"
	OperationCancelOrder   = "CANCEL_ORDER"
	OperationTrackOrder    = "TRACK_ORDER"
	OperationScheduleOrder = "SCHEDULE_ORDER"
	OperationProcessOrder  = "PROCESS_ORDER"
)

// Entry is one diagnostic record: which operation failed, for which order
// (when known), why, and on whose behalf.
type Entry struct {
	id        kernel.UUID
	timestamp time.Time
	operation string
	orderID   *kernel.UUID
	message   string
	userID    kernel.UUID

	isConstructed bool
}

// NewEntry creates a diagnostic record stamped with the current time.
// orderID may be nil when the failure happened before an order existed
// (for example a rejected placement).
func NewEntry(operation string, orderID *kernel.UUID, message string, userID kernel.UUID) (*Entry, error) {
	e := &Entry{
		id:            kernel.NewUUID(),
		timestamp:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		e.setOperation(operation),
		e.setMessage(message),
		e.setUserID(userID),
	); err != nil {
		return nil, err
	}

	if orderID != nil {
		id := *orderID
		e.orderID = &id
	}

	return e, nil
}

// RestoreEntry reconstructs an Entry from persisted state.
// Intended for repository adapters only.
func RestoreEntry(
	id kernel.UUID,
	timestamp time.Time,
	operation string,
	orderID *kernel.UUID,
	message string,
	userID kernel.UUID,
) (*Entry, error) {
	e, err := NewEntry(operation, orderID, message, userID)
	if err != nil {
		return nil, err
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}

	e.id = id
	e.timestamp = timestamp
	return e, nil
}

// Validate ensures the Entry was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// Timestamp returns when the entry was recorded.
func (e *Entry) Timestamp() time.Time {
	return e.timestamp
}

// Operation returns the operation name the entry belongs to.
func (e *Entry) Operation() string {
	return e.operation
}

// OrderID returns the order the failure relates to, or nil when the
// failure preceded order creation.
func (e *Entry) OrderID() *kernel.UUID {
	if e.orderID == nil {
		return nil
	}
	id := *e.orderID
	return &id
}

// Message returns the human-readable failure description.
func (e *Entry) Message() string {
	return e.message
}

// UserID returns the user on whose behalf the failed operation ran.
func (e *Entry) UserID() kernel.UUID {
	return e.userID
}

func (e *Entry) setOperation(operation string) error {
	if operation == "" {
		return errs.NewValueIsRequiredError("operation")
	}
	e.operation = operation
	return nil
}

func (e *Entry) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	e.message = message
	return nil
}

func (e *Entry) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	e.userID = userID
	return nil
}
