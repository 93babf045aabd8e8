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
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/topfreegames/payout/internal/core/entities/account"
	"github.com/topfreegames/payout/internal/core/ports"
)

type memoryPaymentAccountCache struct {
	c *cache.Cache
}

var _ ports.PaymentAccountCache = (*memoryPaymentAccountCache)(nil)

// NewMemoryPaymentAccountCache keeps accounts in process memory. Expired
// entries are removed every cleanupInterval.
func NewMemoryPaymentAccountCache(cleanupInterval time.Duration) *memoryPaymentAccountCache {
	return &memoryPaymentAccountCache{c: cache.New(cache.NoExpiration, cleanupInterval)}
}

func (m *memoryPaymentAccountCache) GetPaymentAccount(_ context.Context, id account.PayoutAccountID) (*account.PaymentAccount, error) {
	cached, found := m.c.Get(id.String())
	if !found {
		return nil, nil
	}

	paymentAccount := cached.(account.PaymentAccount)
	return &paymentAccount, nil
}

// SetPaymentAccount stores a copy so callers can't change the cached value.
func (m *memoryPaymentAccountCache) SetPaymentAccount(_ context.Context, paymentAccount *account.PaymentAccount, ttl time.Duration) error {
	m.c.Set(paymentAccount.ID.String(), *paymentAccount, ttl)
	return nil
}

func (m *memoryPaymentAccountCache) DeletePaymentAccount(_ context.Context, id account.PayoutAccountID) error {
	m.c.Delete(id.String())
	return nil
}
