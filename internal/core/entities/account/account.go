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

package account

import (
	"strconv"
	"time"
)

// PayoutAccountID identifies a payment account owned by the payout system.
type PayoutAccountID int64

func (id PayoutAccountID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParsePayoutAccountID parses the decimal representation of an account id.
func ParsePayoutAccountID(raw string) (PayoutAccountID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}

	return PayoutAccountID(id), nil
}

type AccountType string

const (
	AccountTypeStripeManagedAccount AccountType = "stripe_managed_account"
)

type Entity string

const (
	EntityDasher   Entity = "dasher"
	EntityMerchant Entity = "merchant"
)

// PaymentAccount is the persisted payout account record.
type PaymentAccount struct {
	ID                         PayoutAccountID `json:"id"`
	AccountType                AccountType     `json:"account_type"`
	AccountID                  *int64          `json:"account_id,omitempty"`
	Entity                     Entity          `json:"entity"`
	StatementDescriptor        string          `json:"statement_descriptor"`
	ChargesEnabled             bool            `json:"charges_enabled"`
	TransfersEnabled           bool            `json:"transfers_enabled"`
	PayoutDisabled             bool            `json:"payout_disabled"`
	IsVerifiedWithStripe       bool            `json:"is_verified_with_stripe"`
	UpgradedToManagedAccountAt *time.Time      `json:"upgraded_to_managed_account_at,omitempty"`
	CreatedAt                  time.Time       `json:"created_at"`
}

// PaymentAccountCreate holds the fields required to insert a new account.
type PaymentAccountCreate struct {
	AccountType         AccountType
	AccountID           *int64
	Entity              Entity
	StatementDescriptor string
}

// PaymentAccountUpdate is a partial update. Nil fields are left untouched by
// the repository.
type PaymentAccountUpdate struct {
	StatementDescriptor *string
	ChargesEnabled      *bool
	TransfersEnabled    *bool
	PayoutDisabled      *bool
}

// IsEmpty returns true if the update would not change any column.
func (u *PaymentAccountUpdate) IsEmpty() bool {
	return u == nil ||
		(u.StatementDescriptor == nil && u.ChargesEnabled == nil && u.TransfersEnabled == nil && u.PayoutDisabled == nil)
}

// PayoutAccountInternal is what account operations hand back to their callers.
type PayoutAccountInternal struct {
	PaymentAccount *PaymentAccount `json:"payment_account"`
}

func IsAccountTypeSupported(accountType string) bool {
	return AccountType(accountType) == AccountTypeStripeManagedAccount
}

func IsEntitySupported(entity string) bool {
	switch Entity(entity) {
	case EntityDasher, EntityMerchant:
		return true
	}

	return false
}
