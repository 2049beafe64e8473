package endpoint

import (
	"fmt"
)

// TransportError reports that no HTTP response was obtained: connection
// refused, DNS failure, timeout or an unreadable body.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusMismatchError reports a response whose status is neither expected
// nor tolerated.
type StatusMismatchError struct {
	Expected int
	Got      int
}

func (e *StatusMismatchError) Error() string {
	return fmt.Sprintf("expected status %d, got %d", e.Expected, e.Got)
}

// BodyTooLargeError reports a response body too large to evaluate
// assertions against.
type BodyTooLargeError struct {
	Limit int
}

func (e *BodyTooLargeError) Error() string {
	return fmt.Sprintf("response body exceeds %d MiB", e.Limit>>20)
}

// AssertionError reports a body field that is absent or holds the wrong value.
type AssertionError struct {
	Field    string
	Expected string
	Got      string
	Missing  bool
	Reason   string // optional, e.g. "response body is not valid JSON"
}

func (e *AssertionError) Error() string {
	if e.Missing {
		if e.Reason != "" {
			return fmt.Sprintf("field %q not found (%s)", e.Field, e.Reason)
		}
		return fmt.Sprintf("field %q not found", e.Field)
	}
	return fmt.Sprintf("field %q: expected %q, got %q", e.Field, e.Expected, e.Got)
}
