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

package account_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/topfreegames/payout/internal/core/entities/account"
)

func TestPaymentAccountUpdate_IsEmpty(t *testing.T) {
	t.Run("nil update is empty", func(t *testing.T) {
		var update *account.PaymentAccountUpdate
		require.True(t, update.IsEmpty())
	})

	t.Run("update without fields is empty", func(t *testing.T) {
		require.True(t, (&account.PaymentAccountUpdate{}).IsEmpty())
	})

	t.Run("update with statement descriptor is not empty", func(t *testing.T) {
		descriptor := "ACME*STORE"
		require.False(t, (&account.PaymentAccountUpdate{StatementDescriptor: &descriptor}).IsEmpty())
	})

	t.Run("update with a flag is not empty", func(t *testing.T) {
		disabled := true
		require.False(t, (&account.PaymentAccountUpdate{PayoutDisabled: &disabled}).IsEmpty())
	})
}

func TestParsePayoutAccountID(t *testing.T) {
	t.Run("parses decimal ids", func(t *testing.T) {
		id, err := account.ParsePayoutAccountID("123")
		require.NoError(t, err)
		require.Equal(t, account.PayoutAccountID(123), id)
		require.Equal(t, "123", id.String())
	})

	t.Run("fails on non numeric ids", func(t *testing.T) {
		_, err := account.ParsePayoutAccountID("acc_123")
		require.Error(t, err)
	})
}

func TestSupportedValues(t *testing.T) {
	require.True(t, account.IsAccountTypeSupported("stripe_managed_account"))
	require.False(t, account.IsAccountTypeSupported("bank_account"))

	require.True(t, account.IsEntitySupported("dasher"))
	require.True(t, account.IsEntitySupported("merchant"))
	require.False(t, account.IsEntitySupported("customer"))
}
