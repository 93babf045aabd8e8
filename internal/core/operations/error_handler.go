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
)

// InternalErrorHandler provides the default HandleError of a Handler. Any
// failure becomes the generic internal error, except the end of the caller
// context, which becomes a canceled error.
type InternalErrorHandler[Req any] struct{}

func (InternalErrorHandler[Req]) HandleError(ctx context.Context, _ Req, err error) *PaymentError {
	return HandleUnexpectedError(ctx, err)
}

// HandleUnexpectedError is the fallback used by handlers that override
// HandleError but only recognize some failures.
func HandleUnexpectedError(ctx context.Context, err error) *PaymentError {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		return NewErrCanceled()
	}

	return NewErrInternal()
}
