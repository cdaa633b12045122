package ctxerr

import (
	"fmt"
	"strings"
)

// InvalidPathError is returned when a supplied path literal does not match the prefix expected by the naming
// convention; this is a local validation failure, raised before any network call takes place.
type InvalidPathError struct {
	// Expected is the prefix the convention requires e.g. 'store://bucket/'.
	Expected string

	// Path is the path which was supplied.
	Path string
}

// Error implements the 'error' interface.
func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path '%s', expected a path beginning with '%s'", e.Path, e.Expected)
}

// NotEmptyError is returned when attempting to delete a whole context which still contains items; deletion is refused
// and no destructive calls are made.
type NotEmptyError struct {
	// Keys are the keys of the offending items.
	Keys []string
}

// Error implements the 'error' interface.
func (e *NotEmptyError) Error() string {
	return fmt.Sprintf("context is not empty, %d item(s) remain: %s", len(e.Keys), strings.Join(e.Keys, ", "))
}

// VerificationFailedError is returned when the enumeration required to verify that a context is empty prior to
// deletion could not complete; ambiguity is never treated as "safe to delete".
type VerificationFailedError struct {
	inner error
}

// NewVerificationFailedError returns a new verification failed error wrapping the given enumeration failure.
func NewVerificationFailedError(err error) *VerificationFailedError {
	return &VerificationFailedError{inner: err}
}

// Error implements the 'error' interface.
func (e *VerificationFailedError) Error() string {
	return fmt.Sprintf("could not verify that the context is empty: %s", e.inner)
}

// Unwrap exposes the underlying enumeration failure.
func (e *VerificationFailedError) Unwrap() error {
	return e.inner
}

// ConversionError is returned when a listed objects key could not be parsed back into a spec by the naming
// convention; suppressed during non-strict listing, surfaced during strict listing.
type ConversionError struct {
	// Key is the key which failed to parse.
	Key string

	inner error
}

// NewConversionError returns a new conversion error for the given key, wrapping the convention failure.
func NewConversionError(key string, err error) *ConversionError {
	return &ConversionError{Key: key, inner: err}
}

// Error implements the 'error' interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("failed to convert key '%s' into a spec: %s", e.Key, e.inner)
}

// Unwrap exposes the underlying convention failure.
func (e *ConversionError) Unwrap() error {
	return e.inner
}
