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
	"time"

	"github.com/topfreegames/payout/internal/core/entities/account"
)

// PaymentAccount is the row stored on the payment_accounts table.
type PaymentAccount struct {
	ID                         int64      `pg:"id"`
	AccountType                string     `pg:"account_type"`
	AccountID                  *int64     `pg:"account_id"`
	Entity                     string     `pg:"entity"`
	StatementDescriptor        string     `pg:"statement_descriptor"`
	ChargesEnabled             bool       `pg:"charges_enabled,use_zero"`
	TransfersEnabled           bool       `pg:"transfers_enabled,use_zero"`
	PayoutDisabled             bool       `pg:"payout_disabled,use_zero"`
	IsVerifiedWithStripe       bool       `pg:"is_verified_with_stripe,use_zero"`
	UpgradedToManagedAccountAt *time.Time `pg:"upgraded_to_managed_account_at"`
	CreatedAt                  time.Time  `pg:"created_at"`
}

func NewDBPaymentAccount(data *account.PaymentAccountCreate) *PaymentAccount {
	return &PaymentAccount{
		AccountType:         string(data.AccountType),
		AccountID:           data.AccountID,
		Entity:              string(data.Entity),
		StatementDescriptor: data.StatementDescriptor,
	}
}

func (p *PaymentAccount) ToPaymentAccount() *account.PaymentAccount {
	return &account.PaymentAccount{
		ID:                         account.PayoutAccountID(p.ID),
		AccountType:                account.AccountType(p.AccountType),
		AccountID:                  p.AccountID,
		Entity:                     account.Entity(p.Entity),
		StatementDescriptor:        p.StatementDescriptor,
		ChargesEnabled:             p.ChargesEnabled,
		TransfersEnabled:           p.TransfersEnabled,
		PayoutDisabled:             p.PayoutDisabled,
		IsVerifiedWithStripe:       p.IsVerifiedWithStripe,
		UpgradedToManagedAccountAt: p.UpgradedToManagedAccountAt,
		CreatedAt:                  p.CreatedAt,
	}
}
