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

//go:generate mockgen -source=payment_account_ports.go -destination=mock/payment_account_ports_mock.go -package=mock

package ports

import (
	"context"
	"time"

	"github.com/topfreegames/payout/internal/core/entities/account"
)

// Primary ports (input, driving ports)

type AccountService interface {
	// CreatePayoutAccount validates the request and runs the create account operation.
	CreatePayoutAccount(ctx context.Context, data *account.PaymentAccountCreate) (*account.PayoutAccountInternal, error)
	// GetPayoutAccount fetches the account, reading through the cache.
	GetPayoutAccount(ctx context.Context, id account.PayoutAccountID) (*account.PayoutAccountInternal, error)
	// UpdatePayoutAccountStatementDescriptor validates the request and runs the update statement descriptor operation.
	UpdatePayoutAccountStatementDescriptor(ctx context.Context, id account.PayoutAccountID, statementDescriptor string) (*account.PayoutAccountInternal, error)
}

// Secondary ports (output, driven ports)

type PaymentAccountRepository interface {
	// CreatePaymentAccount inserts a new account and returns it with the generated fields.
	CreatePaymentAccount(ctx context.Context, data *account.PaymentAccountCreate) (*account.PaymentAccount, error)
	// GetPaymentAccountByID returns a not found error when the account does not exist.
	GetPaymentAccountByID(ctx context.Context, id account.PayoutAccountID) (*account.PaymentAccount, error)
	// UpdatePaymentAccountByID applies the partial update and returns the
	// updated record. NOTE: concurrent updates on the same account are
	// serialized by the storage, the last write wins.
	UpdatePaymentAccountByID(ctx context.Context, id account.PayoutAccountID, data *account.PaymentAccountUpdate) (*account.PaymentAccount, error)
}

type PaymentAccountCache interface {
	// GetPaymentAccount returns nil, nil on cache miss.
	GetPaymentAccount(ctx context.Context, id account.PayoutAccountID) (*account.PaymentAccount, error)
	SetPaymentAccount(ctx context.Context, paymentAccount *account.PaymentAccount, ttl time.Duration) error
	DeletePaymentAccount(ctx context.Context, id account.PayoutAccountID) error
}
