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

package validations

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type descriptorRequest struct {
	AccountType         string `validate:"required,account_type"`
	Entity              string `validate:"required,account_entity"`
	StatementDescriptor string `validate:"required,statement_descriptor"`
}

func TestIsStatementDescriptorValid(t *testing.T) {
	t.Run("with success", func(t *testing.T) {
		require.True(t, IsStatementDescriptorValid("ACME*STORE"))
		require.True(t, IsStatementDescriptorValid("ACME1"))
		require.True(t, IsStatementDescriptorValid("DASHER PAYOUT 2026 ABC"))
	})

	t.Run("fails when too short or too long", func(t *testing.T) {
		require.False(t, IsStatementDescriptorValid("ACME"))
		require.False(t, IsStatementDescriptorValid("DASHER PAYOUT 2026 ABCD"))
		require.False(t, IsStatementDescriptorValid(""))
	})

	t.Run("fails without letters", func(t *testing.T) {
		require.False(t, IsStatementDescriptorValid("12345*678"))
	})

	t.Run("fails with forbidden characters", func(t *testing.T) {
		require.False(t, IsStatementDescriptorValid("ACME<STORE>"))
		require.False(t, IsStatementDescriptorValid(`ACME\STORE`))
		require.False(t, IsStatementDescriptorValid("ACME'S STORE"))
		require.False(t, IsStatementDescriptorValid(`ACME "STORE"`))
	})
}

func TestRegisterValidations(t *testing.T) {
	require.NoError(t, RegisterValidations())

	t.Run("with success", func(t *testing.T) {
		err := Validate.Struct(descriptorRequest{
			AccountType:         "stripe_managed_account",
			Entity:              "merchant",
			StatementDescriptor: "ACME*STORE",
		})
		require.NoError(t, err)
	})

	t.Run("translates custom validation errors", func(t *testing.T) {
		err := Validate.Struct(descriptorRequest{
			AccountType:         "bank_account",
			Entity:              "customer",
			StatementDescriptor: "<b>",
		})
		require.Error(t, err)

		message := TranslateErrors(err)
		require.Contains(t, message, "AccountType must be one of the following options: stripe_managed_account")
		require.Contains(t, message, "Entity must be one of the following options: dasher, merchant")
		require.Contains(t, message, "StatementDescriptor must have between 5 and 22 characters")
	})

	t.Run("translates built-in validation errors", func(t *testing.T) {
		err := Validate.Struct(descriptorRequest{})
		require.Error(t, err)
		require.Contains(t, TranslateErrors(err), "AccountType is a required field")
	})
}
