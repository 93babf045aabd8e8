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

package viper

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/topfreegames/payout/internal/config"
)

// defaults are used when neither the config file nor the environment set
// the path.
var defaults = map[string]interface{}{
	"adapters.paymentAccountStorage.postgres.connectAttempts": 3,
	"adapters.paymentAccountCache.type":                       "memory",
	"adapters.redis.poolSize":                                 10,
	"services.accounts.cacheTTL":                              5 * time.Minute,
	"migration.path":                                          "file://internal/adapters/storage/postgres/migrations",
	"metrics.enabled":                                         false,
	"metrics.port":                                            "9090",
	"metrics.gracefulShutdownTimeout":                         10 * time.Second,
	"tracing.jaeger.disabled":                                 true,
	"tracing.gracefulShutdownTimeout":                         10 * time.Second,
}

func NewViperConfig(configPath string) (config.Config, error) {
	config := viper.New()
	config.SetEnvPrefix("payout")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	for path, value := range defaults {
		config.SetDefault(path, value)
	}

	config.SetConfigType("yaml")
	config.SetConfigFile(configPath)
	err := config.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return config, nil
}
