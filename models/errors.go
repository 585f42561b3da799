package models

import "fmt"

// ValidationError reports bad input values. It maps to HTTP 400 and is
// always detected before any write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports a missing resource. Requests for another
// owner's resource also produce NotFoundError so existence is not
// revealed. Maps to HTTP 404.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// InvalidStateError reports an operation attempted against a post whose
// status does not permit it (e.g. editing a post that has already been
// claimed for publishing). Maps to HTTP 400.
type InvalidStateError struct {
	Op     string
	Status PostStatus
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s a post in status %q", e.Op, e.Status)
}

func NewInvalidStateError(op string, status PostStatus) *InvalidStateError {
	return &InvalidStateError{Op: op, Status: status}
}

// AdapterError reports a failed platform call. It is never surfaced as
// an HTTP error from the scheduling endpoints; the worker records it in
// the post's publish results instead.
type AdapterError struct {
	Platform Platform
	Reason   string
}

func (e *AdapterError) Error() string {
	return fmt.Sprintf("%s: %s", e.Platform, e.Reason)
}

func NewAdapterError(platform Platform, reason string) *AdapterError {
	return &AdapterError{Platform: platform, Reason: reason}
}

// StoreUnavailableError wraps a storage failure. Maps to HTTP 500 and
// is always safe to retry.
type StoreUnavailableError struct {
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable: %v", e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}

func NewStoreUnavailableError(err error) *StoreUnavailableError {
	return &StoreUnavailableError{Err: err}
}
