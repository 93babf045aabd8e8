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

package operations

import (
	"strconv"
	"time"

	"github.com/topfreegames/payout/internal/core/monitoring"
)

var (
	operationExecutionLatencyMetric = monitoring.CreateLatencyMetric(&monitoring.MetricOpts{
		Namespace: monitoring.Namespace,
		Subsystem: monitoring.SubsystemOperations,
		Name:      "operation_execution",
		Help:      "Latency of operations unit of work",
		Labels: []string{
			monitoring.LabelOperation,
			monitoring.LabelSuccess,
		},
	})

	operationFailuresMetric = monitoring.CreateCounterMetric(&monitoring.MetricOpts{
		Namespace: monitoring.Namespace,
		Subsystem: monitoring.SubsystemOperations,
		Name:      "operation_failures",
		Help:      "Operations that finished with error, by error kind",
		Labels: []string{
			monitoring.LabelOperation,
			monitoring.LabelErrorKind,
		},
	})
)

func reportOperationExecutionLatency(start time.Time, operationName string, success bool) {
	monitoring.ReportLatencyMetricInMillis(operationExecutionLatencyMetric, start, operationName, strconv.FormatBool(success))
}

func reportOperationFailure(operationName string, kind ErrorKind) {
	operationFailuresMetric.WithLabelValues(operationName, kind.String()).Inc()
}
