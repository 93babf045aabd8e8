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
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/topfreegames/payout/internal/core/entities/operation"
	"github.com/topfreegames/payout/internal/core/logs"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const tracerName = "github.com/topfreegames/payout/internal/core/operations"

// Handler is where the actual operation logic is implemented. Every business
// action provides one, and Operation runs it inside the same logging and
// error normalization envelope.
type Handler[Req, Res any] interface {
	// Name returns the stable operation label used on logs and metrics.
	Name() string
	// LogFields returns the fields that identify the request. It must not
	// return the whole request payload.
	LogFields(request Req) []zap.Field
	// Execute is the unit of work; it performs at most one mutation through
	// its repository and receives a context used for cancellation.
	Execute(ctx context.Context, request Req) (Res, error)
	// HandleError is called when Execute fails with anything that is not a
	// *PaymentError. Embed InternalErrorHandler to get the default mapping.
	HandleError(ctx context.Context, request Req, err error) *PaymentError
}

// Operation binds a request to its handler and runs it once.
type Operation[Req, Res any] struct {
	request Req
	handler Handler[Req, Res]
	logger  *zap.Logger
	status  atomic.Int32
	cause   atomic.Pointer[error]
}

// New returns an operation ready to be executed. A nil logger falls back to
// the global zap logger.
func New[Req, Res any](request Req, handler Handler[Req, Res], logger *zap.Logger) *Operation[Req, Res] {
	if logger == nil {
		logger = zap.L()
	}

	op := &Operation[Req, Res]{
		request: request,
		handler: handler,
		logger:  logger,
	}
	op.status.Store(int32(operation.StatusCreated))

	return op
}

// Name returns the handler name.
func (o *Operation[Req, Res]) Name() string {
	return o.handler.Name()
}

// Status returns the current lifecycle status.
func (o *Operation[Req, Res]) Status() operation.Status {
	return operation.Status(o.status.Load())
}

// Cause returns the failure the unit of work ended with, nil while the
// operation has not failed. It is never part of the error returned by Execute.
func (o *Operation[Req, Res]) Cause() error {
	if cause := o.cause.Load(); cause != nil {
		return *cause
	}

	return nil
}

// Execute runs the unit of work. The returned error, if any, is always a
// *PaymentError. NOTE: an operation executes only once; further calls fail
// without touching the handler.
func (o *Operation[Req, Res]) Execute(ctx context.Context) (Res, error) {
	var empty Res
	name := o.handler.Name()

	if !o.transition(operation.StatusCreated, operation.StatusRunning) {
		return empty, NewErrFailedPrecondition(CodeOperationAlreadyExecuted, "operation %s can only be executed once", name)
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, name)
	defer span.End()

	logger := o.logger.With(zap.String(logs.LogFieldOperationName, name)).With(o.handler.LogFields(o.request)...)
	logger.Info("starting operation")

	startTime := time.Now()
	result, err := o.runUnitOfWork(ctx)
	if err != nil {
		paymentErr := o.normalize(ctx, err)
		o.cause.Store(&err)
		o.transition(operation.StatusRunning, operation.StatusFailed)

		span.RecordError(err)
		span.SetAttributes(
			attribute.String(logs.LogFieldErrorCode, paymentErr.Code()),
			attribute.String(logs.LogFieldCorrelationID, paymentErr.CorrelationID()),
		)
		span.SetStatus(codes.Error, paymentErr.Code())
		reportOperationExecutionLatency(startTime, name, false)
		reportOperationFailure(name, paymentErr.Kind())

		return empty, paymentErr
	}

	o.transition(operation.StatusRunning, operation.StatusSucceeded)
	reportOperationExecutionLatency(startTime, name, true)
	logger.Info("operation completed")

	return result, nil
}

func (o *Operation[Req, Res]) runUnitOfWork(ctx context.Context) (result Res, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("operation %s panicked: %v", o.handler.Name(), r)
		}
	}()

	return o.handler.Execute(ctx, o.request)
}

// normalize forwards sanctioned errors untouched and sends everything else to
// the handler hook.
func (o *Operation[Req, Res]) normalize(ctx context.Context, err error) *PaymentError {
	var paymentErr *PaymentError
	if errors.As(err, &paymentErr) && paymentErr != nil {
		return paymentErr
	}

	if handled := o.handler.HandleError(ctx, o.request, err); handled != nil {
		return handled
	}

	return NewErrInternal()
}

func (o *Operation[Req, Res]) transition(from, to operation.Status) bool {
	if !from.CanTransitionTo(to) {
		return false
	}

	return o.status.CompareAndSwap(int32(from), int32(to))
}
