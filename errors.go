package s3sig

import (
	"errors"
	"fmt"
)

// Error is a sentinel error constant, following the pattern used throughout this
// package for fixed, parameterless failure conditions.
type Error string

// Error returns a string representation of the error.
func (e Error) Error() string { return string(e) }

const (
	// ErrMissingScheme is returned when a Bucket is constructed from an endpoint
	// URL with no scheme.
	ErrMissingScheme = Error("s3sig: endpoint URL has no scheme")

	// ErrMissingHost is returned when a Bucket is constructed from an endpoint
	// URL with no host.
	ErrMissingHost = Error("s3sig: endpoint URL has no host")

	// ErrEmptyObjectKey is returned by action constructors that require a
	// non-empty object key.
	ErrEmptyObjectKey = Error("s3sig: object key must not be empty")

	// ErrEmptyUploadID is returned by multipart-upload action constructors that
	// require a non-empty upload ID.
	ErrEmptyUploadID = Error("s3sig: upload id must not be empty")

	// ErrNoParts is returned by CompleteMultipartUpload when constructed with no
	// parts.
	ErrNoParts = Error("s3sig: complete multipart upload requires at least one part")
)

// ConfigurationError is returned when a Bucket fails validation at
// construction time. No signing is possible until the underlying problem is
// fixed.
type ConfigurationError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("s3sig: invalid %s %q: %s", e.Field, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// IsConfigurationError reports whether err is a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return err != nil && errors.As(err, &ce)
}

// ParameterError is returned when an action is constructed or mutated with a
// value that violates the action's contract, such as a part number or expiry
// outside the allowed range.
type ParameterError struct {
	Action string
	Field  string
	Value  string
	Err    error
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("s3sig: %s: invalid %s %q: %s", e.Action, e.Field, e.Value, e.Err)
}

func (e *ParameterError) Unwrap() error { return e.Err }

// IsParameterError reports whether err is a *ParameterError.
func IsParameterError(err error) bool {
	var pe *ParameterError
	return err != nil && errors.As(err, &pe)
}

// ParseError is returned by response parsers when a response body cannot be
// mapped to the expected structured type: malformed XML or a value that does
// not parse into its field's type. Unrecognized elements are never an error.
// A missing element is not an error either; its field is left at the zero
// value.
type ParseError struct {
	Element string
	Offset  int64
	Err     error
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("s3sig: parse error at element %q (offset %d): %s", e.Element, e.Offset, e.Err)
	}
	return fmt.Sprintf("s3sig: parse error at element %q: %s", e.Element, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsParseError reports whether err is a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return err != nil && errors.As(err, &pe)
}
