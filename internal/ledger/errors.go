package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrNoBoatsAvailable = errors.New("no boats available")
	ErrInvalidBoatID    = errors.New("invalid boat number")
	ErrBoatUnavailable  = errors.New("boat unavailable")
	ErrInvalidStartHour = errors.New("invalid start hour")
	ErrInvalidDuration  = errors.New("invalid hire duration")
)

// NoBoatsError is returned when every boat is out. NextHour is the earliest
// hour a boat comes back, valid only when Known is set.
type NoBoatsError struct {
	NextHour int
	Known    bool
}

func (e *NoBoatsError) Error() string {
	if !e.Known {
		return "No boats are currently available, and the next available time is unknown."
	}
	return fmt.Sprintf("No boats are currently available. The first available boat will be at %d:00.", e.NextHour)
}

func (e *NoBoatsError) Unwrap() error { return ErrNoBoatsAvailable }

// HireError is a rejected hire with an operator-facing message.
type HireError struct {
	Kind    error
	Message string
}

func (e *HireError) Error() string { return e.Message }

func (e *HireError) Unwrap() error { return e.Kind }

func newHireError(kind error, format string, args ...any) *HireError {
	return &HireError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Reason returns a short stable code for a hire rejection, or "" for nil.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoBoatsAvailable):
		return "NO_BOATS_AVAILABLE"
	case errors.Is(err, ErrInvalidBoatID):
		return "INVALID_BOAT_ID"
	case errors.Is(err, ErrBoatUnavailable):
		return "BOAT_UNAVAILABLE"
	case errors.Is(err, ErrInvalidStartHour):
		return "INVALID_START_HOUR"
	case errors.Is(err, ErrInvalidDuration):
		return "INVALID_DURATION"
	default:
		return "UNKNOWN"
	}
}
