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

package createaccount

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

// OperationName is the create payout account operation name constant.
const OperationName = "create_payout_account"

// Request carries the fields of the account to be created.
type Request struct {
	AccountType         account.AccountType `validate:"required,account_type"`
	Entity              account.Entity      `validate:"required,account_entity"`
	AccountID           *int64              `validate:"omitempty,gt=0"`
	StatementDescriptor string              `validate:"required,statement_descriptor"`
}

type Dependencies struct {
	PaymentAccountRepository ports.PaymentAccountRepository
}

type Operation = operations.Operation[Request, *account.PayoutAccountInternal]

var _ operations.Handler[Request, *account.PayoutAccountInternal] = (*handler)(nil)

type handler struct {
	dependencies Dependencies
}

func New(request Request, dependencies Dependencies, logger *zap.Logger) *Operation {
	return operations.New[Request, *account.PayoutAccountInternal](request, &handler{dependencies: dependencies}, logger)
}

func (h *handler) Name() string {
	return OperationName
}

func (h *handler) LogFields(request Request) []zap.Field {
	return []zap.Field{
		zap.String(logs.LogFieldPaymentAccountType, string(request.AccountType)),
		zap.String(logs.LogFieldPaymentAccountEntity, string(request.Entity)),
	}
}

func (h *handler) Execute(ctx context.Context, request Request) (*account.PayoutAccountInternal, error) {
	paymentAccount, err := h.dependencies.PaymentAccountRepository.CreatePaymentAccount(ctx, &account.PaymentAccountCreate{
		AccountType:         request.AccountType,
		AccountID:           request.AccountID,
		Entity:              request.Entity,
		StatementDescriptor: request.StatementDescriptor,
	})
	if err != nil {
		return nil, err
	}
	if paymentAccount == nil {
		return nil, porterrors.NewErrUnexpected("no payment account returned after insert")
	}

	return &account.PayoutAccountInternal{PaymentAccount: paymentAccount}, nil
}

func (h *handler) HandleError(ctx context.Context, request Request, err error) *operations.PaymentError {
	switch {
	case errors.Is(err, porterrors.ErrAlreadyExists):
		return operations.NewErrAlreadyExists(operations.CodePayoutAccountExists, "a %s payout account already exists for this %s", request.AccountType, request.Entity)
	case errors.Is(err, porterrors.ErrInvalidArgument):
		return operations.NewErrInvalidArgument(operations.CodeInvalidRequest, "the payout account could not be created with the given fields")
	}

	return operations.HandleUnexpectedError(ctx, err)
}
