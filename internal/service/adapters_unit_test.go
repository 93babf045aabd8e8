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

package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	configmock "github.com/topfreegames/payout/internal/config/mock"
	"github.com/topfreegames/payout/internal/core/entities/account"
)

func TestNewPaymentAccountCache(t *testing.T) {
	t.Run("memory cache", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		config := configmock.NewMockConfig(mockCtrl)

		config.EXPECT().GetString(paymentAccountCacheTypePath).Return("memory")
		cache, err := NewPaymentAccountCache(config)
		require.NoError(t, err)

		paymentAccount := &account.PaymentAccount{ID: 123}
		require.NoError(t, cache.SetPaymentAccount(context.Background(), paymentAccount, time.Minute))
		cached, err := cache.GetPaymentAccount(context.Background(), 123)
		require.NoError(t, err)
		require.Equal(t, paymentAccount, cached)
	})

	t.Run("fails with unsupported type", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		config := configmock.NewMockConfig(mockCtrl)

		config.EXPECT().GetString(paymentAccountCacheTypePath).Return("memcached")
		_, err := NewPaymentAccountCache(config)
		require.EqualError(t, err, "unsupported payment account cache type: memcached")
	})

	t.Run("fails with invalid redis url", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		config := configmock.NewMockConfig(mockCtrl)

		config.EXPECT().GetString(paymentAccountCacheTypePath).Return("redis")
		config.EXPECT().GetString(paymentAccountCacheRedisURLPath).Return("")
		_, err := NewPaymentAccountCache(config)
		require.Error(t, err)
	})
}

func TestNewPaymentAccountRepositoryPg(t *testing.T) {
	t.Run("fails with invalid postgres url", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		config := configmock.NewMockConfig(mockCtrl)

		config.EXPECT().GetString(paymentAccountStoragePostgresURLPath).Return("mysql://localhost")
		_, err := NewPaymentAccountRepositoryPg(context.Background(), config)
		require.Error(t, err)
	})
}

func TestNewAccountsConfig(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	config := configmock.NewMockConfig(mockCtrl)

	config.EXPECT().GetDuration(accountsCacheTTLConfigPath).Return(30 * time.Second)

	require.Equal(t, 30*time.Second, NewAccountsConfig(config).CacheTTL)
}
