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

package rdb

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// CacheResult wraps a result-producing function with a Redis
// lookaside cache. The key is derived from a caller-provided
// canonical argument string. Cache failures only log - the
// wrapped function's answer always wins over a broken cache.
func (a *Adapter) CacheResult(fn func() ([]byte, error), argKey string) ([]byte, error) {
	if a == nil {
		return fn()
	}
	hashKey := sha1.Sum([]byte(argKey))
	key := a.keyPrefix + ":" + hex.EncodeToString(hashKey[:])

	cached, err := a.c.Get(a.ctx, key).Bytes()
	if err == nil {
		log.Debug().Str("key", key).Msg("search answered from result cache")
		return cached, nil
	}
	if !errors.Is(err, redis.Nil) {
		log.Error().Err(err).Str("key", key).Msg("failed to read result cache")
	}

	ans, err := fn()
	if err != nil {
		return nil, err
	}
	if err := a.c.Set(a.ctx, key, ans, a.resultTTL).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to write result cache")
	}
	return ans, nil
}
