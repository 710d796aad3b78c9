package models

import (
	"errors"
	"fmt"
	"strings"
)

// BookingStatus is stored as its upper-case string form.
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// ErrUnknownStatus is returned when external text does not name one of the
// four recognized statuses. It is surfaced explicitly, never coerced.
var ErrUnknownStatus = errors.New("unknown booking status")

// ParseBookingStatus matches external text case-insensitively.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, nil
	case StatusConfirmed:
		return StatusConfirmed, nil
	case StatusCancelled:
		return StatusCancelled, nil
	case StatusCompleted:
		return StatusCompleted, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
}
