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
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/topfreegames/payout/internal/core/entities/account"
	porterrors "github.com/topfreegames/payout/internal/core/ports/errors"
	"github.com/topfreegames/payout/test"
)

var redisAddress string

var expectedPaymentAccount = &account.PaymentAccount{
	ID:                  123,
	AccountType:         account.AccountTypeStripeManagedAccount,
	Entity:              account.EntityMerchant,
	StatementDescriptor: "ACME*STORE",
	ChargesEnabled:      true,
	CreatedAt:           time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
}

func TestMain(m *testing.M) {
	var code int
	test.WithRedisContainer(func(redisContainerAddress string) {
		redisAddress = redisContainerAddress
		code = m.Run()
	})
	os.Exit(code)
}

func TestRedisPaymentAccountCache_SetPaymentAccount(t *testing.T) {
	t.Run("with success", func(t *testing.T) {
		client := test.GetRedisConnection(t, redisAddress)
		cache := NewRedisPaymentAccountCache(client)

		err := cache.SetPaymentAccount(context.Background(), expectedPaymentAccount, time.Minute)
		require.NoError(t, err)

		paymentAccountJson, err := client.Get(context.Background(), "payment_account:123").Result()
		require.NoError(t, err)
		require.Contains(t, paymentAccountJson, `"statement_descriptor":"ACME*STORE"`)

		ttl, err := client.TTL(context.Background(), "payment_account:123").Result()
		require.NoError(t, err)
		require.Greater(t, ttl, time.Duration(0))
	})

	t.Run("with error - connection to redis closed", func(t *testing.T) {
		client := test.GetRedisConnection(t, redisAddress)
		cache := NewRedisPaymentAccountCache(client)

		client.Close()

		err := cache.SetPaymentAccount(context.Background(), expectedPaymentAccount, time.Minute)
		require.ErrorIs(t, err, porterrors.ErrUnexpected)
	})
}

func TestRedisPaymentAccountCache_GetPaymentAccount(t *testing.T) {
	t.Run("with success", func(t *testing.T) {
		client := test.GetRedisConnection(t, redisAddress)
		cache := NewRedisPaymentAccountCache(client)
		require.NoError(t, cache.SetPaymentAccount(context.Background(), expectedPaymentAccount, time.Minute))

		paymentAccount, err := cache.GetPaymentAccount(context.Background(), 123)

		require.NoError(t, err)
		if diff := cmp.Diff(expectedPaymentAccount, paymentAccount); diff != "" {
			t.Errorf("unexpected cached payment account (-want +got):\n%s", diff)
		}
	})

	t.Run("cache miss returns nil", func(t *testing.T) {
		client := test.GetRedisConnection(t, redisAddress)
		cache := NewRedisPaymentAccountCache(client)

		paymentAccount, err := cache.GetPaymentAccount(context.Background(), 456)

		require.NoError(t, err)
		require.Nil(t, paymentAccount)
	})

	t.Run("with error - invalid cached value", func(t *testing.T) {
		client := test.GetRedisConnection(t, redisAddress)
		cache := NewRedisPaymentAccountCache(client)
		require.NoError(t, client.Set(context.Background(), "payment_account:123", "not json", time.Minute).Err())

		_, err := cache.GetPaymentAccount(context.Background(), 123)

		require.ErrorIs(t, err, porterrors.ErrEncoding)
	})
}

func TestRedisPaymentAccountCache_DeletePaymentAccount(t *testing.T) {
	t.Run("with success", func(t *testing.T) {
		client := test.GetRedisConnection(t, redisAddress)
		cache := NewRedisPaymentAccountCache(client)
		require.NoError(t, cache.SetPaymentAccount(context.Background(), expectedPaymentAccount, time.Minute))

		require.NoError(t, cache.DeletePaymentAccount(context.Background(), 123))

		paymentAccount, err := cache.GetPaymentAccount(context.Background(), 123)
		require.NoError(t, err)
		require.Nil(t, paymentAccount)
	})

	t.Run("deleting a missing key is not an error", func(t *testing.T) {
		client := test.GetRedisConnection(t, redisAddress)
		cache := NewRedisPaymentAccountCache(client)

		require.NoError(t, cache.DeletePaymentAccount(context.Background(), 789))
	})
}
