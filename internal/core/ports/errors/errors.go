package errors

import "fmt"

type errorKind int

const (
	errUnexpected errorKind = iota
	errAlreadyExists
	errNotFound
	errEncoding
	errInvalidArgument
	errUnavailable
)

// Sentinels used with errors.Is to match an adapter error by kind.
var (
	ErrUnexpected      = &portsError{kind: errUnexpected}
	ErrAlreadyExists   = &portsError{kind: errAlreadyExists}
	ErrNotFound        = &portsError{kind: errNotFound}
	ErrEncoding        = &portsError{kind: errEncoding}
	ErrInvalidArgument = &portsError{kind: errInvalidArgument}
	ErrUnavailable     = &portsError{kind: errUnavailable}
)

type portsError struct {
	kind    errorKind
	message string
	err     error
}

func (e *portsError) Unwrap() error {
	return e.err
}

func (e *portsError) Error() string {
	if e.err == nil {
		return e.message
	}

	return fmt.Sprintf("%s: %s", e.message, e.err)
}

func (e *portsError) Is(other error) bool {
	if err, ok := other.(*portsError); ok {
		return e.kind == err.kind
	}

	return false
}

func (e *portsError) WithError(err error) *portsError {
	e.err = err
	return e
}

func NewErrUnexpected(format string, args ...interface{}) *portsError {
	return newPortsError(errUnexpected, format, args...)
}

func NewErrAlreadyExists(format string, args ...interface{}) *portsError {
	return newPortsError(errAlreadyExists, format, args...)
}

func NewErrNotFound(format string, args ...interface{}) *portsError {
	return newPortsError(errNotFound, format, args...)
}

func NewErrEncoding(format string, args ...interface{}) *portsError {
	return newPortsError(errEncoding, format, args...)
}

func NewErrInvalidArgument(format string, args ...interface{}) *portsError {
	return newPortsError(errInvalidArgument, format, args...)
}

// NewErrUnavailable is used when the storage could not be reached at all.
func NewErrUnavailable(format string, args ...interface{}) *portsError {
	return newPortsError(errUnavailable, format, args...)
}

func newPortsError(kind errorKind, format string, args ...interface{}) *portsError {
	return &portsError{
		kind:    kind,
		message: fmt.Sprintf(format, args...),
	}
}
