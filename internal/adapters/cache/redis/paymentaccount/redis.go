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
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/topfreegames/payout/internal/adapters/metrics"
	"github.com/topfreegames/payout/internal/core/entities/account"
	"github.com/topfreegames/payout/internal/core/ports"
	porterrors "github.com/topfreegames/payout/internal/core/ports/errors"
)

const paymentAccountCacheStorageMetricLabel = "payment-account-cache"

type redisPaymentAccountCache struct {
	client *redis.Client
}

var _ ports.PaymentAccountCache = (*redisPaymentAccountCache)(nil)

func NewRedisPaymentAccountCache(client *redis.Client) *redisPaymentAccountCache {
	return &redisPaymentAccountCache{client: client}
}

func (r *redisPaymentAccountCache) GetPaymentAccount(ctx context.Context, id account.PayoutAccountID) (*account.PaymentAccount, error) {
	var paymentAccountJson string
	var err error
	metrics.RunWithMetrics(paymentAccountCacheStorageMetricLabel, func() error {
		paymentAccountJson, err = r.client.Get(ctx, r.buildPaymentAccountKey(id)).Result()
		return err
	})
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, porterrors.NewErrUnexpected("error getting payment account %d from cache", id).WithError(err)
	}

	paymentAccount := &account.PaymentAccount{}
	err = json.Unmarshal([]byte(paymentAccountJson), paymentAccount)
	if err != nil {
		return nil, porterrors.NewErrEncoding("error decoding cached payment account %d", id).WithError(err)
	}

	return paymentAccount, nil
}

func (r *redisPaymentAccountCache) SetPaymentAccount(ctx context.Context, paymentAccount *account.PaymentAccount, ttl time.Duration) error {
	jsonPaymentAccount, err := json.Marshal(paymentAccount)
	if err != nil {
		return porterrors.NewErrEncoding("error encoding payment account %d", paymentAccount.ID).WithError(err)
	}

	metrics.RunWithMetrics(paymentAccountCacheStorageMetricLabel, func() error {
		err = r.client.Set(ctx, r.buildPaymentAccountKey(paymentAccount.ID), jsonPaymentAccount, ttl).Err()
		return err
	})
	if err != nil {
		return porterrors.NewErrUnexpected("error caching payment account %d", paymentAccount.ID).WithError(err)
	}

	return nil
}

func (r *redisPaymentAccountCache) DeletePaymentAccount(ctx context.Context, id account.PayoutAccountID) error {
	var err error
	metrics.RunWithMetrics(paymentAccountCacheStorageMetricLabel, func() error {
		err = r.client.Del(ctx, r.buildPaymentAccountKey(id)).Err()
		return err
	})
	if err != nil {
		return porterrors.NewErrUnexpected("error deleting payment account %d from cache", id).WithError(err)
	}

	return nil
}

func (r *redisPaymentAccountCache) buildPaymentAccountKey(id account.PayoutAccountID) string {
	return fmt.Sprintf("payment_account:%d", id)
}
