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
	"github.com/topfreegames/payout/internal/core/monitoring"
)

const storageLabel = "postgres_payment_account"

var (
	paymentAccountStorageLatencyMetric = monitoring.CreateLatencyMetric(&monitoring.MetricOpts{
		Namespace: monitoring.Namespace,
		Subsystem: monitoring.SubsystemStorage,
		Name:      "payment_account_storage",
		Help:      "Payment account storage latency metric",
		Labels: []string{
			monitoring.LabelStorage,
			monitoring.LabelMethod,
		},
	})

	paymentAccountStorageFailsCounterMetric = monitoring.CreateCounterMetric(&monitoring.MetricOpts{
		Namespace: monitoring.Namespace,
		Subsystem: monitoring.SubsystemStorage,
		Name:      "payment_account_storage_fails",
		Help:      "Payment account storage fails counter metric",
		Labels: []string{
			monitoring.LabelStorage,
			monitoring.LabelMethod,
		},
	})
)

func runPaymentAccountStorageFunctionCollectingLatency(method string, fn func()) {
	monitoring.RunCollectingLatency(paymentAccountStorageLatencyMetric, fn, storageLabel, method)
}

func reportPaymentAccountStorageFailsCounterMetric(method string) {
	paymentAccountStorageFailsCounterMetric.WithLabelValues(storageLabel, method).Inc()
}
