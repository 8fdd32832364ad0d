package domain

import (
	"errors"
	"fmt"
)

// ErrFeedNotFound returned when an operation references a nonexistent feed id or name
var ErrFeedNotFound = errors.New("feed not found")

// ValidationError reports invalid input rejected at the api boundary
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// DeliveryFailure describes a failed delivery attempt, stage is one of resolve, render, send or lookup
type DeliveryFailure struct {
	FeedID      string
	Destination string
	Stage       string
	Err         error
}

func (e *DeliveryFailure) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("delivery of feed %s to %q failed at %s", e.FeedID, e.Destination, e.Stage)
	}
	return fmt.Sprintf("delivery of feed %s to %q failed at %s: %v", e.FeedID, e.Destination, e.Stage, e.Err)
}

func (e *DeliveryFailure) Unwrap() error { return e.Err }

// PersistenceError reports a failed read or write of the durable feed document
type PersistenceError struct {
	Op   string // load or save
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsValidation checks if err is or wraps a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
