// MIT License
//
// Copyright (c) 2021 TFG Co
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package operations

import (
	"fmt"

	"github.com/google/uuid"
)

type ErrorKind int

const (
	ErrKindUnexpected ErrorKind = iota
	ErrKindNotFound
	ErrKindInvalidArgument
	ErrKindAlreadyExists
	ErrKindFailedPrecondition
	ErrKindCanceled
)

func (k ErrorKind) String() string {
	switch k {
	case ErrKindUnexpected:
		return "unexpected"
	case ErrKindNotFound:
		return "not_found"
	case ErrKindInvalidArgument:
		return "invalid_argument"
	case ErrKindAlreadyExists:
		return "already_exists"
	case ErrKindFailedPrecondition:
		return "failed_precondition"
	case ErrKindCanceled:
		return "canceled"
	}

	return "unknown"
}

// Error codes handed to callers. They are part of the public contract and
// must not change once released.
const (
	CodeUnknownPaymentError      = "unknown_payment_error"
	CodeRequestCanceled          = "request_canceled"
	CodeInvalidRequest           = "invalid_request"
	CodeOperationAlreadyExecuted = "operation_already_executed"
	CodePayoutAccountNotFound    = "payout_account_not_found"
	CodePayoutAccountExists      = "payout_account_already_exists"
)

const internalErrorMessage = "Internal server error. Contact the payout responsible team for helping troubleshoot."

// Sentinels used with errors.Is to match a PaymentError by kind.
var (
	ErrUnexpected         = &PaymentError{kind: ErrKindUnexpected}
	ErrNotFound           = &PaymentError{kind: ErrKindNotFound}
	ErrInvalidArgument    = &PaymentError{kind: ErrKindInvalidArgument}
	ErrAlreadyExists      = &PaymentError{kind: ErrKindAlreadyExists}
	ErrFailedPrecondition = &PaymentError{kind: ErrKindFailedPrecondition}
	ErrCanceled           = &PaymentError{kind: ErrKindCanceled}
)

// PaymentError is the only error type allowed to leave an operation. It never
// wraps the failure that originated it, so nothing from the storage or any
// other collaborator reaches the caller.
type PaymentError struct {
	kind          ErrorKind
	code          string
	message       string
	retryable     bool
	correlationID string
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *PaymentError) Is(other error) bool {
	if err, ok := other.(*PaymentError); ok {
		return e.kind == err.kind
	}

	return false
}

func (e *PaymentError) Kind() ErrorKind {
	return e.kind
}

func (e *PaymentError) Code() string {
	return e.code
}

func (e *PaymentError) Message() string {
	return e.message
}

func (e *PaymentError) Retryable() bool {
	return e.retryable
}

// CorrelationID is an opaque identifier attached to unexpected errors. The
// same id is recorded next to the original failure on the operation span.
func (e *PaymentError) CorrelationID() string {
	return e.correlationID
}

// NewErrInternal returns the generic unexpected error. It receives no details
// on purpose.
func NewErrInternal() *PaymentError {
	return &PaymentError{
		kind:          ErrKindUnexpected,
		code:          CodeUnknownPaymentError,
		message:       internalErrorMessage,
		correlationID: uuid.NewString(),
	}
}

func NewErrNotFound(code, format string, args ...interface{}) *PaymentError {
	return &PaymentError{
		kind:    ErrKindNotFound,
		code:    code,
		message: fmt.Sprintf(format, args...),
	}
}

func NewErrInvalidArgument(code, format string, args ...interface{}) *PaymentError {
	return &PaymentError{
		kind:    ErrKindInvalidArgument,
		code:    code,
		message: fmt.Sprintf(format, args...),
	}
}

func NewErrAlreadyExists(code, format string, args ...interface{}) *PaymentError {
	return &PaymentError{
		kind:    ErrKindAlreadyExists,
		code:    code,
		message: fmt.Sprintf(format, args...),
	}
}

func NewErrFailedPrecondition(code, format string, args ...interface{}) *PaymentError {
	return &PaymentError{
		kind:    ErrKindFailedPrecondition,
		code:    code,
		message: fmt.Sprintf(format, args...),
	}
}

// NewErrCanceled is returned when the caller context ends before the unit of
// work. Callers may retry with a new operation.
func NewErrCanceled() *PaymentError {
	return &PaymentError{
		kind:      ErrKindCanceled,
		code:      CodeRequestCanceled,
		message:   "The request was canceled before the operation could finish.",
		retryable: true,
	}
}
