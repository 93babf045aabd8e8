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

package paymentaccount

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/go-pg/pg/extra/pgotel/v10"
	"github.com/go-pg/pg/v10"
	"github.com/topfreegames/payout/internal/core/entities/account"
	"github.com/topfreegames/payout/internal/core/ports"
	porterrors "github.com/topfreegames/payout/internal/core/ports/errors"
)

var _ ports.PaymentAccountRepository = (*paymentAccountStorage)(nil)

const (
	pgCodeUniqueViolation     = "23505"
	pgCodeCheckViolation      = "23514"
	pgCodeStringTruncation    = "22001"
	pgCodeInvalidTextEncoding = "22P05"
)

const (
	queryInsertPaymentAccount = `
INSERT INTO payment_accounts (account_type, account_id, entity, statement_descriptor)
	VALUES (?account_type, ?account_id, ?entity, ?statement_descriptor)
	RETURNING *`
	queryGetPaymentAccount    = `SELECT * FROM payment_accounts WHERE id = ?`
	queryUpdatePaymentAccount = `UPDATE payment_accounts SET %s WHERE id = ? RETURNING *`
)

type paymentAccountStorage struct {
	db *pg.DB
}

func NewPaymentAccountStorage(opts *pg.Options) *paymentAccountStorage {
	return &paymentAccountStorage{db: pg.Connect(opts)}
}

func (s *paymentAccountStorage) EnableTracing() {
	s.db.AddQueryHook(pgotel.NewTracingHook())
}

// Ping checks that the database accepts queries.
func (s *paymentAccountStorage) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *paymentAccountStorage) Close() error {
	return s.db.Close()
}

func (s *paymentAccountStorage) CreatePaymentAccount(ctx context.Context, data *account.PaymentAccountCreate) (*account.PaymentAccount, error) {
	if data == nil {
		return nil, porterrors.NewErrInvalidArgument("payment account data is required")
	}

	client := s.db.WithContext(ctx)
	dbPaymentAccount := NewDBPaymentAccount(data)

	var err error
	runPaymentAccountStorageFunctionCollectingLatency("CreatePaymentAccount", func() {
		_, err = client.QueryOne(dbPaymentAccount, queryInsertPaymentAccount, dbPaymentAccount)
	})
	if err != nil {
		reportPaymentAccountStorageFailsCounterMetric("CreatePaymentAccount")
		return nil, translateError(err, "error creating %s payment account for %s", data.AccountType, data.Entity)
	}

	return dbPaymentAccount.ToPaymentAccount(), nil
}

func (s *paymentAccountStorage) GetPaymentAccountByID(ctx context.Context, id account.PayoutAccountID) (*account.PaymentAccount, error) {
	client := s.db.WithContext(ctx)
	var dbPaymentAccount PaymentAccount

	var err error
	runPaymentAccountStorageFunctionCollectingLatency("GetPaymentAccountByID", func() {
		_, err = client.QueryOne(&dbPaymentAccount, queryGetPaymentAccount, int64(id))
	})
	if err == pg.ErrNoRows {
		return nil, porterrors.NewErrNotFound("payment account %d not found", id)
	}
	if err != nil {
		reportPaymentAccountStorageFailsCounterMetric("GetPaymentAccountByID")
		return nil, translateError(err, "error getting payment account %d", id)
	}

	return dbPaymentAccount.ToPaymentAccount(), nil
}

func (s *paymentAccountStorage) UpdatePaymentAccountByID(ctx context.Context, id account.PayoutAccountID, data *account.PaymentAccountUpdate) (*account.PaymentAccount, error) {
	if data.IsEmpty() {
		return nil, porterrors.NewErrInvalidArgument("payment account %d update has no fields", id)
	}

	columns, values := buildSetClause(data)
	query := fmt.Sprintf(queryUpdatePaymentAccount, columns)
	client := s.db.WithContext(ctx)
	var dbPaymentAccount PaymentAccount

	var err error
	runPaymentAccountStorageFunctionCollectingLatency("UpdatePaymentAccountByID", func() {
		_, err = client.QueryOne(&dbPaymentAccount, query, append(values, int64(id))...)
	})
	if err == pg.ErrNoRows {
		return nil, porterrors.NewErrNotFound("payment account %d not found", id)
	}
	if err != nil {
		reportPaymentAccountStorageFailsCounterMetric("UpdatePaymentAccountByID")
		return nil, translateError(err, "error updating payment account %d", id)
	}

	return dbPaymentAccount.ToPaymentAccount(), nil
}

// buildSetClause only sets the columns present on the update, in a stable
// order so the query text is the same for the same set of fields.
func buildSetClause(data *account.PaymentAccountUpdate) (string, []interface{}) {
	columns := make([]string, 0, 4)
	values := make([]interface{}, 0, 5)

	if data.StatementDescriptor != nil {
		columns = append(columns, "statement_descriptor = ?")
		values = append(values, *data.StatementDescriptor)
	}
	if data.ChargesEnabled != nil {
		columns = append(columns, "charges_enabled = ?")
		values = append(values, *data.ChargesEnabled)
	}
	if data.TransfersEnabled != nil {
		columns = append(columns, "transfers_enabled = ?")
		values = append(values, *data.TransfersEnabled)
	}
	if data.PayoutDisabled != nil {
		columns = append(columns, "payout_disabled = ?")
		values = append(values, *data.PayoutDisabled)
	}

	return strings.Join(columns, ", "), values
}

func translateError(err error, format string, args ...interface{}) error {
	var pgErr pg.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Field('C') {
		case pgCodeUniqueViolation:
			return porterrors.NewErrAlreadyExists(format, args...).WithError(err)
		case pgCodeCheckViolation, pgCodeStringTruncation, pgCodeInvalidTextEncoding:
			return porterrors.NewErrInvalidArgument(format, args...).WithError(err)
		}
	}

	var netErr net.Error
	if errors.Is(err, pg.ErrClosed) || errors.As(err, &netErr) {
		return porterrors.NewErrUnavailable(format, args...).WithError(err)
	}

	return porterrors.NewErrUnexpected(format, args...).WithError(err)
}
