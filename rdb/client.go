// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rdb provides an optional Redis-backed cache for rhyme
// search responses. Search is deterministic over an index that
// never changes within a process lifetime, so a cached answer can
// only go stale via the configured TTL after a dictionary upgrade
// and restart.
package rdb

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	DefaultResultExpiration = 10 * time.Minute
	DefaultKeyPrefix        = "urhymesCache"
)

type Conf struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	DB       int    `json:"db"`
	Password string `json:"password"`

	// ResultTTLSecs limits cached answer lifetime; zero selects
	// the built-in default.
	ResultTTLSecs int `json:"resultTtlSecs"`

	KeyPrefix string `json:"keyPrefix"`
}

// Adapter wraps the Redis client. A nil *Adapter is a valid
// "cache disabled" value - all operations then pass through.
type Adapter struct {
	ctx       context.Context
	c         *redis.Client
	resultTTL time.Duration
	keyPrefix string
}

// TestConnection tries to ping Redis repeatedly until success or
// the timeout. Modeled as a retry loop so a freshly started Redis
// container does not take the whole service down.
func (a *Adapter) TestConnection(timeout time.Duration) error {
	if a == nil {
		return nil
	}
	tick := time.NewTicker(2 * time.Second)
	defer tick.Stop()
	deadline := time.After(timeout)
	for {
		err := a.c.Ping(a.ctx).Err()
		if err == nil {
			return nil
		}
		log.Warn().Err(err).Msg("waiting for Redis connection")
		select {
		case <-deadline:
			return fmt.Errorf("failed to connect to Redis within %v", timeout)
		case <-tick.C:
		}
	}
}

func NewAdapter(ctx context.Context, conf *Conf) *Adapter {
	if conf == nil {
		log.Info().Msg("Redis result cache not configured - searches will always be computed")
		return nil
	}
	ttl := DefaultResultExpiration
	if conf.ResultTTLSecs > 0 {
		ttl = time.Duration(conf.ResultTTLSecs) * time.Second
	}
	prefix := conf.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
		log.Warn().
			Str("keyPrefix", prefix).
			Msg("Redis cache key prefix not specified, using default")
	}
	return &Adapter{
		ctx: ctx,
		c: redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", conf.Host, conf.Port),
			Password: conf.Password,
			DB:       conf.DB,
		}),
		resultTTL: ttl,
		keyPrefix: prefix,
	}
}
