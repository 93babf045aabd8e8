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

package accounts

import (
	"context"
	"errors"
	"time"

	"github.com/topfreegames/payout/internal/core/entities/account"
	"github.com/topfreegames/payout/internal/core/logs"
	"github.com/topfreegames/payout/internal/core/operations"
	"github.com/topfreegames/payout/internal/core/operations/accounts/createaccount"
	"github.com/topfreegames/payout/internal/core/operations/accounts/updatestatementdescriptor"
	"github.com/topfreegames/payout/internal/core/ports"
	porterrors "github.com/topfreegames/payout/internal/core/ports/errors"
	"github.com/topfreegames/payout/internal/validations"
	"go.uber.org/zap"
)

// Config defines configurations for the AccountService.
type Config struct {
	CacheTTL time.Duration
}

type AccountService struct {
	repository ports.PaymentAccountRepository
	cache      ports.PaymentAccountCache
	config     Config
	logger     *zap.Logger
}

var _ ports.AccountService = (*AccountService)(nil)

func NewAccountService(repository ports.PaymentAccountRepository, cache ports.PaymentAccountCache, config Config) *AccountService {
	return &AccountService{
		repository: repository,
		cache:      cache,
		config:     config,
		logger:     zap.L().With(zap.String(logs.LogFieldComponent, "service"), zap.String(logs.LogFieldServiceName, "account_service")),
	}
}

func (s *AccountService) CreatePayoutAccount(ctx context.Context, data *account.PaymentAccountCreate) (*account.PayoutAccountInternal, error) {
	if data == nil {
		return nil, operations.NewErrInvalidArgument(operations.CodeInvalidRequest, "payout account data is required")
	}

	request := createaccount.Request{
		AccountType:         data.AccountType,
		Entity:              data.Entity,
		AccountID:           data.AccountID,
		StatementDescriptor: data.StatementDescriptor,
	}
	if err := validations.Validate.Struct(request); err != nil {
		return nil, operations.NewErrInvalidArgument(operations.CodeInvalidRequest, "%s", validations.TranslateErrors(err))
	}

	op := createaccount.New(request, createaccount.Dependencies{PaymentAccountRepository: s.repository}, s.logger)
	result, err := op.Execute(ctx)
	if err != nil {
		s.logFailure(op.Name(), op.Cause(), err)
		return nil, err
	}

	s.storeInCache(ctx, result.PaymentAccount)

	return result, nil
}

func (s *AccountService) GetPayoutAccount(ctx context.Context, id account.PayoutAccountID) (*account.PayoutAccountInternal, error) {
	if id <= 0 {
		return nil, operations.NewErrInvalidArgument(operations.CodeInvalidRequest, "payout account id must be greater than zero")
	}

	paymentAccount, err := s.cache.GetPaymentAccount(ctx, id)
	if err != nil {
		s.logger.Warn("error fetching payment account from cache", zap.Int64(logs.LogFieldPayoutAccountID, int64(id)), zap.Error(err))
	}
	if paymentAccount != nil {
		return &account.PayoutAccountInternal{PaymentAccount: paymentAccount}, nil
	}

	paymentAccount, err = s.repository.GetPaymentAccountByID(ctx, id)
	if err != nil {
		var paymentErr *operations.PaymentError
		if errors.Is(err, porterrors.ErrNotFound) {
			paymentErr = operations.NewErrNotFound(operations.CodePayoutAccountNotFound, "payout account %d not found", id)
		} else {
			paymentErr = operations.HandleUnexpectedError(ctx, err)
			s.logger.Error("error fetching payment account",
				zap.Int64(logs.LogFieldPayoutAccountID, int64(id)),
				zap.String(logs.LogFieldCorrelationID, paymentErr.CorrelationID()),
				zap.Error(err),
			)
		}
		return nil, paymentErr
	}

	s.storeInCache(ctx, paymentAccount)

	return &account.PayoutAccountInternal{PaymentAccount: paymentAccount}, nil
}

func (s *AccountService) UpdatePayoutAccountStatementDescriptor(ctx context.Context, id account.PayoutAccountID, statementDescriptor string) (*account.PayoutAccountInternal, error) {
	request := updatestatementdescriptor.Request{
		PayoutAccountID:     id,
		StatementDescriptor: statementDescriptor,
	}
	if err := validations.Validate.Struct(request); err != nil {
		return nil, operations.NewErrInvalidArgument(operations.CodeInvalidRequest, "%s", validations.TranslateErrors(err))
	}

	op := updatestatementdescriptor.New(request, updatestatementdescriptor.Dependencies{PaymentAccountRepository: s.repository}, s.logger)
	result, err := op.Execute(ctx)
	if err != nil {
		s.logFailure(op.Name(), op.Cause(), err)
		return nil, err
	}

	if err := s.cache.DeletePaymentAccount(ctx, id); err != nil {
		s.logger.Warn("error invalidating payment account cache", zap.Int64(logs.LogFieldPayoutAccountID, int64(id)), zap.Error(err))
	}

	return result, nil
}

func (s *AccountService) storeInCache(ctx context.Context, paymentAccount *account.PaymentAccount) {
	if paymentAccount == nil {
		return
	}

	if err := s.cache.SetPaymentAccount(ctx, paymentAccount, s.config.CacheTTL); err != nil {
		s.logger.Warn("error caching payment account", zap.Int64(logs.LogFieldPayoutAccountID, int64(paymentAccount.ID)), zap.Error(err))
	}
}

// logFailure records the code handed to the caller. Internal errors are
// logged with their cause next to the correlation id the caller received.
func (s *AccountService) logFailure(operationName string, cause, err error) {
	var paymentErr *operations.PaymentError
	if !errors.As(err, &paymentErr) {
		s.logger.Error("operation failed", zap.String(logs.LogFieldOperationName, operationName), zap.Error(err))
		return
	}

	fields := []zap.Field{
		zap.String(logs.LogFieldOperationName, operationName),
		zap.String(logs.LogFieldErrorCode, paymentErr.Code()),
	}
	if paymentErr.Kind() == operations.ErrKindUnexpected {
		s.logger.Error("operation failed", append(fields,
			zap.String(logs.LogFieldCorrelationID, paymentErr.CorrelationID()),
			zap.Error(cause),
		)...)
		return
	}

	s.logger.Info("operation rejected", fields...)
}
