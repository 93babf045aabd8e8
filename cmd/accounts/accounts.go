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

package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/topfreegames/payout/cmd/commom"
	"github.com/topfreegames/payout/internal/core/entities/account"
	"github.com/topfreegames/payout/internal/core/operations"
	"github.com/topfreegames/payout/internal/core/ports"
	"go.uber.org/zap"
)

const componentName = "cli"

var (
	logConfig  string
	configPath string

	accountType         string
	accountEntity       string
	stripeAccountID     int64
	statementDescriptor string
)

var AccountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "Manages payout accounts",
}

var createCmd = &cobra.Command{
	Use:     "create",
	Short:   "Creates a payout account",
	Example: "payout accounts create --type stripe_managed_account --entity dasher --statement-descriptor \"ACME*STORE\"",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		data := &account.PaymentAccountCreate{
			AccountType:         account.AccountType(accountType),
			Entity:              account.Entity(accountEntity),
			StatementDescriptor: statementDescriptor,
		}
		if stripeAccountID != 0 {
			data.AccountID = &stripeAccountID
		}

		runWithAccountService(cmd, func(ctx context.Context, accountService ports.AccountService) (*account.PayoutAccountInternal, error) {
			return accountService.CreatePayoutAccount(ctx, data)
		})
	},
}

var getCmd = &cobra.Command{
	Use:     "get <payout-account-id>",
	Short:   "Prints a payout account",
	Example: "payout accounts get 123",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := parseAccountID(cmd, args[0])

		runWithAccountService(cmd, func(ctx context.Context, accountService ports.AccountService) (*account.PayoutAccountInternal, error) {
			return accountService.GetPayoutAccount(ctx, id)
		})
	},
}

var updateStatementDescriptorCmd = &cobra.Command{
	Use:     "update-statement-descriptor <payout-account-id> <statement-descriptor>",
	Short:   "Updates the statement descriptor of a payout account",
	Example: "payout accounts update-statement-descriptor 123 \"ACME*STORE\"",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id := parseAccountID(cmd, args[0])

		runWithAccountService(cmd, func(ctx context.Context, accountService ports.AccountService) (*account.PayoutAccountInternal, error) {
			return accountService.UpdatePayoutAccountStatementDescriptor(ctx, id, args[1])
		})
	},
}

func init() {
	AccountsCmd.PersistentFlags().StringVarP(&logConfig, "log-config", "l", "production", "preset of configurations used by the logs. possible values are \"development\" or \"production\".")
	AccountsCmd.PersistentFlags().StringVarP(&configPath, "config-path", "c", "config/config.yaml", "path of the configuration YAML file")

	createCmd.Flags().StringVar(&accountType, "type", string(account.AccountTypeStripeManagedAccount), "type of the payment account")
	createCmd.Flags().StringVar(&accountEntity, "entity", "", "entity owning the account. possible values are \"dasher\" or \"merchant\".")
	createCmd.Flags().Int64Var(&stripeAccountID, "account-id", 0, "id of the account at the payment provider, if already known")
	createCmd.Flags().StringVar(&statementDescriptor, "statement-descriptor", "", "text shown on the bank statement of the account owner")

	AccountsCmd.AddCommand(createCmd, getCmd, updateStatementDescriptorCmd)
}

func parseAccountID(cmd *cobra.Command, raw string) account.PayoutAccountID {
	id, err := account.ParsePayoutAccountID(raw)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "invalid payout account id %q\n", raw)
		os.Exit(1)
	}

	return id
}

func runWithAccountService(cmd *cobra.Command, run func(context.Context, ports.AccountService) (*account.PayoutAccountInternal, error)) {
	ctx, cancelFn := context.WithCancel(cmd.Context())
	defer cancelFn()

	err, config, shutdownFn := commom.ServiceSetup(ctx, cancelFn, componentName, logConfig, configPath)
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("unable to setup service")
	}

	accountService, err := initializeAccountService(ctx, config)
	if err != nil {
		zap.L().With(zap.Error(err)).Fatal("failed to initialize account service")
	}

	result, err := run(ctx, accountService)

	if shutdownErr := shutdownFn(); shutdownErr != nil {
		zap.L().With(zap.Error(shutdownErr)).Warn("failed to shutdown service")
	}

	if err != nil {
		writeError(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}

	if err := writeResult(cmd.OutOrStdout(), result); err != nil {
		zap.L().With(zap.Error(err)).Fatal("failed to write result")
	}
}

func writeResult(w io.Writer, result *account.PayoutAccountInternal) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(result.PaymentAccount)
}

// writeError prints only what is safe to show to the caller.
func writeError(w io.Writer, err error) {
	var paymentErr *operations.PaymentError
	if !errors.As(err, &paymentErr) {
		paymentErr = operations.NewErrInternal()
	}

	fmt.Fprintf(w, "%s: %s\n", paymentErr.Code(), paymentErr.Message())
}
