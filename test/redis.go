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

package test

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/orlangure/gnomock"
	predis "github.com/orlangure/gnomock/preset/redis"
)

// redis ships with 16 logical databases, 0 is left for manual inspection.
const redisDatabases = 15

var dbNumber int32 = 0

// WithRedisContainer starts a redis container, runs exec against it and stops
// the container afterwards.
func WithRedisContainer(exec func(redisAddress string)) {
	redisContainer, err := gnomock.Start(predis.Preset())
	if err != nil {
		panic(fmt.Sprintf("error creating redis docker instance: %s\n", err))
	}
	defer func() { _ = gnomock.Stop(redisContainer) }()

	exec(redisContainer.DefaultAddress())
}

// GetRedisConnection returns a client bound to a database no other test in
// the package is using. The database is flushed when the test ends.
func GetRedisConnection(t *testing.T, redisAddress string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: redisAddress,
		DB:   nextRedisDatabase(),
	})
	t.Cleanup(func() {
		client.FlushDB(context.Background())
		_ = client.Close()
	})

	return client
}

// GetRedisURL is the url form of GetRedisConnection's database, as read from
// the adapters configuration.
func GetRedisURL(redisAddress string) string {
	return fmt.Sprintf("redis://%s/%d", redisAddress, nextRedisDatabase())
}

func nextRedisDatabase() int {
	return int(atomic.AddInt32(&dbNumber, 1)%redisDatabases) + 1
}
