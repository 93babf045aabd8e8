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

package updatestatementdescriptor

import (
	"context"
	"errors"

	"github.com/topfreegames/payout/internal/core/entities/account"
	"github.com/topfreegames/payout/internal/core/logs"
	"github.com/topfreegames/payout/internal/core/operations"
	"github.com/topfreegames/payout/internal/core/ports"
	porterrors "github.com/topfreegames/payout/internal/core/ports/errors"
	"go.uber.org/zap"
)

// OperationName is the update statement descriptor operation name constant.
const OperationName = "update_payout_account_statement_descriptor"

// Request carries the account to update and its new statement descriptor.
type Request struct {
	PayoutAccountID     account.PayoutAccountID `validate:"required,gt=0"`
	StatementDescriptor string                  `validate:"required,statement_descriptor"`
}

// Dependencies are the collaborators the operation needs.
type Dependencies struct {
	PaymentAccountRepository ports.PaymentAccountRepository
}

// Operation is the update statement descriptor operation bound to its result type.
type Operation = operations.Operation[Request, *account.PayoutAccountInternal]

var _ operations.Handler[Request, *account.PayoutAccountInternal] = (*handler)(nil)

type handler struct {
	dependencies Dependencies
}

// New returns a new operation for the given request.
func New(request Request, dependencies Dependencies, logger *zap.Logger) *Operation {
	return operations.New[Request, *account.PayoutAccountInternal](request, &handler{dependencies: dependencies}, logger)
}

func (h *handler) Name() string {
	return OperationName
}

func (h *handler) LogFields(request Request) []zap.Field {
	return []zap.Field{zap.Int64(logs.LogFieldPayoutAccountID, int64(request.PayoutAccountID))}
}

// Execute updates only the statement descriptor column of the account.
func (h *handler) Execute(ctx context.Context, request Request) (*account.PayoutAccountInternal, error) {
	paymentAccount, err := h.dependencies.PaymentAccountRepository.UpdatePaymentAccountByID(ctx, request.PayoutAccountID, &account.PaymentAccountUpdate{
		StatementDescriptor: &request.StatementDescriptor,
	})
	if err != nil {
		return nil, err
	}
	if paymentAccount == nil {
		return nil, porterrors.NewErrNotFound("payment account %d not found", request.PayoutAccountID)
	}

	return &account.PayoutAccountInternal{PaymentAccount: paymentAccount}, nil
}

func (h *handler) HandleError(ctx context.Context, request Request, err error) *operations.PaymentError {
	if errors.Is(err, porterrors.ErrNotFound) {
		return operations.NewErrNotFound(operations.CodePayoutAccountNotFound, "payout account %d not found", request.PayoutAccountID)
	}

	return operations.HandleUnexpectedError(ctx, err)
}
