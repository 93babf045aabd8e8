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

//go:build unit
// +build unit

package createaccount_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/topfreegames/payout/internal/core/entities/account"
	"github.com/topfreegames/payout/internal/core/operations"
	"github.com/topfreegames/payout/internal/core/operations/accounts/createaccount"
	porterrors "github.com/topfreegames/payout/internal/core/ports/errors"
	mockports "github.com/topfreegames/payout/internal/core/ports/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestOperation_Execute(t *testing.T) {
	stripeID := int64(42)
	request := createaccount.Request{
		AccountType:         account.AccountTypeStripeManagedAccount,
		Entity:              account.EntityDasher,
		AccountID:           &stripeID,
		StatementDescriptor: "DASHER PAYOUT",
	}
	expectedCreate := &account.PaymentAccountCreate{
		AccountType:         account.AccountTypeStripeManagedAccount,
		Entity:              account.EntityDasher,
		AccountID:           &stripeID,
		StatementDescriptor: "DASHER PAYOUT",
	}

	t.Run("should succeed", func(t *testing.T) {
		t.Run("repository inserts the account => returns the created record", func(t *testing.T) {
			repository, logger, recorded := testSetup(t)
			created := &account.PaymentAccount{
				ID:                  7,
				AccountType:         account.AccountTypeStripeManagedAccount,
				AccountID:           &stripeID,
				Entity:              account.EntityDasher,
				StatementDescriptor: "DASHER PAYOUT",
				CreatedAt:           time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
			}

			repository.EXPECT().CreatePaymentAccount(gomock.Any(), expectedCreate).Return(created, nil)

			result, err := createaccount.New(request, createaccount.Dependencies{PaymentAccountRepository: repository}, logger).Execute(context.Background())

			require.NoError(t, err)
			require.Same(t, created, result.PaymentAccount)

			entries := recorded.All()
			require.Len(t, entries, 2)
			require.Equal(t, "starting operation", entries[0].Message)
			require.Equal(t, "operation completed", entries[1].Message)
			fields := entries[0].ContextMap()
			require.Equal(t, createaccount.OperationName, fields["operation_name"])
			require.Equal(t, "stripe_managed_account", fields["payment_account_type"])
			require.Equal(t, "dasher", fields["payment_account_entity"])
		})
	})

	t.Run("should fail", func(t *testing.T) {
		t.Run("repository reports duplicate => returns already exists", func(t *testing.T) {
			repository, logger, _ := testSetup(t)

			repository.EXPECT().CreatePaymentAccount(gomock.Any(), expectedCreate).Return(nil, porterrors.NewErrAlreadyExists("payment account already exists"))

			_, err := createaccount.New(request, createaccount.Dependencies{PaymentAccountRepository: repository}, logger).Execute(context.Background())

			var paymentErr *operations.PaymentError
			require.ErrorAs(t, err, &paymentErr)
			require.ErrorIs(t, err, operations.ErrAlreadyExists)
			require.Equal(t, operations.CodePayoutAccountExists, paymentErr.Code())
		})

		t.Run("repository rejects the fields => returns invalid argument", func(t *testing.T) {
			repository, logger, _ := testSetup(t)

			repository.EXPECT().CreatePaymentAccount(gomock.Any(), expectedCreate).Return(nil, porterrors.NewErrInvalidArgument("value too long for type character varying(22)"))

			_, err := createaccount.New(request, createaccount.Dependencies{PaymentAccountRepository: repository}, logger).Execute(context.Background())

			require.ErrorIs(t, err, operations.ErrInvalidArgument)
			require.NotContains(t, err.Error(), "character varying")
		})

		t.Run("repository returns no record => returns internal error and no result", func(t *testing.T) {
			repository, logger, recorded := testSetup(t)

			repository.EXPECT().CreatePaymentAccount(gomock.Any(), expectedCreate).Return(nil, nil)

			op := createaccount.New(request, createaccount.Dependencies{PaymentAccountRepository: repository}, logger)
			result, err := op.Execute(context.Background())

			require.Nil(t, result)
			require.ErrorIs(t, err, operations.ErrUnexpected)
			require.ErrorIs(t, op.Cause(), porterrors.ErrUnexpected)
			require.Len(t, recorded.All(), 1)
		})

		t.Run("repository fails unexpectedly => returns internal error", func(t *testing.T) {
			repository, logger, recorded := testSetup(t)

			repository.EXPECT().CreatePaymentAccount(gomock.Any(), expectedCreate).Return(nil, errors.New("pg: database is closed"))

			_, err := createaccount.New(request, createaccount.Dependencies{PaymentAccountRepository: repository}, logger).Execute(context.Background())

			require.ErrorIs(t, err, operations.ErrUnexpected)
			require.NotContains(t, err.Error(), "database is closed")
			require.Len(t, recorded.All(), 1)
		})
	})
}

func testSetup(t *testing.T) (*mockports.MockPaymentAccountRepository, *zap.Logger, *observer.ObservedLogs) {
	mockCtrl := gomock.NewController(t)
	core, recorded := observer.New(zapcore.InfoLevel)

	return mockports.NewMockPaymentAccountRepository(mockCtrl), zap.New(core), recorded
}
