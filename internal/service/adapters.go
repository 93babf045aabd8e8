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

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/go-pg/pg/v10"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	memorycache "github.com/topfreegames/payout/internal/adapters/cache/memory/paymentaccount"
	rediscache "github.com/topfreegames/payout/internal/adapters/cache/redis/paymentaccount"
	"github.com/topfreegames/payout/internal/adapters/storage/postgres/paymentaccount"
	"github.com/topfreegames/payout/internal/adapters/tracing"
	"github.com/topfreegames/payout/internal/config"
	"github.com/topfreegames/payout/internal/core/ports"
	"github.com/topfreegames/payout/internal/core/services/accounts"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.uber.org/zap"
)

// configurations paths for the adapters
const (
	// Postgres payment account storage
	paymentAccountStoragePostgresURLPath             = "adapters.paymentAccountStorage.postgres.url"
	paymentAccountStoragePostgresConnectAttemptsPath = "adapters.paymentAccountStorage.postgres.connectAttempts"
	// Payment account cache
	paymentAccountCacheTypePath     = "adapters.paymentAccountCache.type"
	paymentAccountCacheRedisURLPath = "adapters.paymentAccountCache.redis.url"
	// Redis configs
	redisPoolSizePath = "adapters.redis.poolSize"
)

const (
	paymentAccountCacheTypeRedis  = "redis"
	paymentAccountCacheTypeMemory = "memory"

	memoryCacheCleanupInterval = time.Minute
	postgresConnectDelay       = time.Second
)

// NewAccountService instantiates the payout account service.
func NewAccountService(repository ports.PaymentAccountRepository, cache ports.PaymentAccountCache, config accounts.Config) ports.AccountService {
	return accounts.NewAccountService(repository, cache, config)
}

// NewPaymentAccountRepositoryPg instantiates a postgres connection as payment
// account repository. The connection is checked before returning.
func NewPaymentAccountRepositoryPg(ctx context.Context, c config.Config) (ports.PaymentAccountRepository, error) {
	opts, err := connectToPostgres(GetPaymentAccountStoragePostgresURL(c))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize postgres payment account storage: %w", err)
	}

	pgStorage := paymentaccount.NewPaymentAccountStorage(opts)

	if tracing.IsTracingEnabled(c) {
		pgStorage.EnableTracing()
	}

	attempts := c.GetInt(paymentAccountStoragePostgresConnectAttemptsPath)
	if attempts < 1 {
		attempts = 1
	}
	err = retry.Do(func() error {
		return pgStorage.Ping(ctx)
	},
		retry.Context(ctx),
		retry.Attempts(uint(attempts)),
		retry.Delay(postgresConnectDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			zap.L().Warn("postgres is not ready", zap.Uint("attempt", attempt+1), zap.Error(err))
		}),
	)
	if err != nil {
		_ = pgStorage.Close()
		return nil, fmt.Errorf("failed to connect to postgres payment account storage: %w", err)
	}

	return pgStorage, nil
}

// NewPaymentAccountCache instantiates the payment account cache set on the
// configuration, redis or memory.
func NewPaymentAccountCache(c config.Config) (ports.PaymentAccountCache, error) {
	switch cacheType := c.GetString(paymentAccountCacheTypePath); cacheType {
	case paymentAccountCacheTypeRedis:
		client, err := createRedisClient(c, c.GetString(paymentAccountCacheRedisURLPath))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis payment account cache: %w", err)
		}

		return rediscache.NewRedisPaymentAccountCache(client), nil
	case paymentAccountCacheTypeMemory, "":
		return memorycache.NewMemoryPaymentAccountCache(memoryCacheCleanupInterval), nil
	default:
		return nil, fmt.Errorf("unsupported payment account cache type: %s", cacheType)
	}
}

// GetPaymentAccountStoragePostgresURL get payment account storage postgres URL.
func GetPaymentAccountStoragePostgresURL(c config.Config) string {
	return c.GetString(paymentAccountStoragePostgresURLPath)
}

func createRedisClient(c config.Config, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	if poolSize := c.GetInt(redisPoolSizePath); poolSize > 0 {
		opts.PoolSize = poolSize
	}

	client := redis.NewClient(opts)

	if tracing.IsTracingEnabled(c) {
		hostPort := strings.Split(opts.Addr, ":")
		attributes := []redisotel.Option{}
		if len(hostPort) == 2 {
			attributes = append(attributes, redisotel.WithAttributes(
				semconv.NetPeerNameKey.String(hostPort[0]),
				semconv.NetPeerPortKey.String(hostPort[1]),
			))
		}
		client.AddHook(redisotel.NewTracingHook(attributes...))
	}

	return client, nil
}

func connectToPostgres(url string) (*pg.Options, error) {
	opts, err := pg.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid postgres URL: %w", err)
	}

	return opts, nil
}
