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

//go:build integration
// +build integration

package paymentaccount

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	golangMigrate "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/orlangure/gnomock"
	ppg "github.com/orlangure/gnomock/preset/postgres"
	"github.com/stretchr/testify/require"
	"github.com/topfreegames/payout/internal/core/entities/account"
	porterrors "github.com/topfreegames/payout/internal/core/ports/errors"
	"golang.org/x/sync/errgroup"
)

var dbNumber int32 = 0
var postgresContainer *gnomock.Container
var postgresDB *pg.DB

func TestMain(m *testing.M) {
	var err error
	postgresContainer, err = gnomock.Start(ppg.Preset(ppg.WithDatabase("base")))
	if err != nil {
		panic(fmt.Sprintf("error creating postgres docker instance: %s\n", err))
	}

	opts := &pg.Options{
		Addr:     postgresContainer.DefaultAddress(),
		User:     "postgres",
		Password: "password",
		Database: "base",
	}
	if err := migrate(opts); err != nil {
		panic(fmt.Sprintf("error preparing postgres database: %s\n", err))
	}

	// template databases can't have open sessions while being copied
	adminOpts := *opts
	adminOpts.Database = "postgres"
	postgresDB = pg.Connect(&adminOpts)
	code := m.Run()

	_ = postgresDB.Close()
	_ = gnomock.Stop(postgresContainer)
	os.Exit(code)
}

func TestPaymentAccountStorage_CreatePaymentAccount(t *testing.T) {
	t.Run("with success", func(t *testing.T) {
		storage := NewPaymentAccountStorage(getPostgresDB(t).Options())
		stripeID := int64(42)

		created, err := storage.CreatePaymentAccount(context.Background(), &account.PaymentAccountCreate{
			AccountType:         account.AccountTypeStripeManagedAccount,
			AccountID:           &stripeID,
			Entity:              account.EntityDasher,
			StatementDescriptor: "DASHER PAYOUT",
		})

		require.NoError(t, err)
		require.Greater(t, int64(created.ID), int64(0))
		require.NotZero(t, created.CreatedAt)
		require.Equal(t, &stripeID, created.AccountID)
		require.False(t, created.ChargesEnabled)
		require.Nil(t, created.UpgradedToManagedAccountAt)
	})

	t.Run("fails when the stripe account is already linked", func(t *testing.T) {
		storage := NewPaymentAccountStorage(getPostgresDB(t).Options())
		stripeID := int64(42)
		data := &account.PaymentAccountCreate{
			AccountType:         account.AccountTypeStripeManagedAccount,
			AccountID:           &stripeID,
			Entity:              account.EntityDasher,
			StatementDescriptor: "DASHER PAYOUT",
		}

		_, err := storage.CreatePaymentAccount(context.Background(), data)
		require.NoError(t, err)

		_, err = storage.CreatePaymentAccount(context.Background(), data)
		require.ErrorIs(t, err, porterrors.ErrAlreadyExists)
	})

	t.Run("fails when the descriptor does not fit the column", func(t *testing.T) {
		storage := NewPaymentAccountStorage(getPostgresDB(t).Options())

		_, err := storage.CreatePaymentAccount(context.Background(), &account.PaymentAccountCreate{
			AccountType:         account.AccountTypeStripeManagedAccount,
			Entity:              account.EntityMerchant,
			StatementDescriptor: "A DESCRIPTOR THAT IS FAR TOO LONG",
		})

		require.ErrorIs(t, err, porterrors.ErrInvalidArgument)
	})
}

func TestPaymentAccountStorage_GetPaymentAccountByID(t *testing.T) {
	t.Run("with success", func(t *testing.T) {
		storage := NewPaymentAccountStorage(getPostgresDB(t).Options())
		created := createPaymentAccount(t, storage)

		fetched, err := storage.GetPaymentAccountByID(context.Background(), created.ID)

		require.NoError(t, err)
		if diff := cmp.Diff(created, fetched, cmpopts.EquateApproxTime(time.Millisecond)); diff != "" {
			t.Errorf("unexpected payment account (-want +got):\n%s", diff)
		}
	})

	t.Run("fails when account does not exist", func(t *testing.T) {
		storage := NewPaymentAccountStorage(getPostgresDB(t).Options())

		_, err := storage.GetPaymentAccountByID(context.Background(), 999999)

		require.ErrorIs(t, err, porterrors.ErrNotFound)
	})

	t.Run("fails when connection is closed", func(t *testing.T) {
		storage := NewPaymentAccountStorage(getPostgresDB(t).Options())
		require.NoError(t, storage.Close())

		_, err := storage.GetPaymentAccountByID(context.Background(), 1)

		require.ErrorIs(t, err, porterrors.ErrUnavailable)
	})
}

func TestPaymentAccountStorage_UpdatePaymentAccountByID(t *testing.T) {
	t.Run("with success - only statement descriptor changes", func(t *testing.T) {
		storage := NewPaymentAccountStorage(getPostgresDB(t).Options())
		created := createPaymentAccount(t, storage)
		descriptor := "ACME*STORE"

		updated, err := storage.UpdatePaymentAccountByID(context.Background(), created.ID, &account.PaymentAccountUpdate{StatementDescriptor: &descriptor})

		require.NoError(t, err)
		require.Equal(t, "ACME*STORE", updated.StatementDescriptor)

		expected := *created
		expected.StatementDescriptor = "ACME*STORE"
		if diff := cmp.Diff(&expected, updated, cmpopts.EquateApproxTime(time.Millisecond)); diff != "" {
			t.Errorf("unexpected payment account (-want +got):\n%s", diff)
		}
	})

	t.Run("with success - concurrent updates leave one of the values", func(t *testing.T) {
		storage := NewPaymentAccountStorage(getPostgresDB(t).Options())
		created := createPaymentAccount(t, storage)
		descriptors := []string{"FIRST*STORE", "SECOND*STORE"}

		errGroup, ctx := errgroup.WithContext(context.Background())
		for i := range descriptors {
			descriptor := descriptors[i]
			errGroup.Go(func() error {
				_, err := storage.UpdatePaymentAccountByID(ctx, created.ID, &account.PaymentAccountUpdate{StatementDescriptor: &descriptor})
				return err
			})
		}
		require.NoError(t, errGroup.Wait())

		fetched, err := storage.GetPaymentAccountByID(context.Background(), created.ID)
		require.NoError(t, err)
		require.Contains(t, descriptors, fetched.StatementDescriptor)
	})

	t.Run("fails when account does not exist", func(t *testing.T) {
		storage := NewPaymentAccountStorage(getPostgresDB(t).Options())
		descriptor := "ACME*STORE"

		_, err := storage.UpdatePaymentAccountByID(context.Background(), 999999, &account.PaymentAccountUpdate{StatementDescriptor: &descriptor})

		require.ErrorIs(t, err, porterrors.ErrNotFound)
	})

	t.Run("fails when update is empty", func(t *testing.T) {
		storage := NewPaymentAccountStorage(getPostgresDB(t).Options())

		_, err := storage.UpdatePaymentAccountByID(context.Background(), 1, &account.PaymentAccountUpdate{})

		require.ErrorIs(t, err, porterrors.ErrInvalidArgument)
	})
}

func createPaymentAccount(t *testing.T, storage *paymentAccountStorage) *account.PaymentAccount {
	created, err := storage.CreatePaymentAccount(context.Background(), &account.PaymentAccountCreate{
		AccountType:         account.AccountTypeStripeManagedAccount,
		Entity:              account.EntityMerchant,
		StatementDescriptor: "MERCHANT PAYOUT",
	})
	require.NoError(t, err)

	return created
}

func getPostgresDB(t *testing.T) *pg.DB {
	number := atomic.AddInt32(&dbNumber, 1)
	dbname := fmt.Sprintf("db%d", number)
	_, err := postgresDB.Exec(fmt.Sprintf("CREATE DATABASE %s TEMPLATE base", dbname))
	require.NoError(t, err)

	opts := &pg.Options{
		Addr:     postgresContainer.DefaultAddress(),
		User:     "postgres",
		Password: "password",
		Database: dbname,
	}

	db := pg.Connect(opts)

	t.Cleanup(func() {
		_ = db.Close()
		_, _ = postgresDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", dbname))
	})

	return db
}

func migrate(opts *pg.Options) error {
	m, err := golangMigrate.New("file://../migrations", getDBUrl(opts))
	if err != nil {
		return err
	}
	defer m.Close()

	err = m.Up()
	if err != nil && err != golangMigrate.ErrNoChange {
		return err
	}

	return nil
}

func getDBUrl(opts *pg.Options) string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", opts.User, opts.Password, opts.Addr, opts.Database)
}
