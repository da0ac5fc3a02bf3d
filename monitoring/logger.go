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

package monitoring

import (
	"context"
	"sync"
	"time"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/rs/zerolog/log"
)

const (
	recentLogSize = 100
)

// QueryStatsLogger accumulates per-process search statistics and
// forwards each record to the configured status writer. It is the
// only mutable shared structure of the service, guarded by its
// own lock and untouched by the search hot path itself.
type QueryStatsLogger struct {
	totalLoad    QueriesLoad
	dataLock     sync.RWMutex
	recentLog    *collections.CircularList[QueryLog]
	tz           *time.Location
	statusWriter StatusWriter
}

func (w *QueryStatsLogger) Log(rec QueryLog) {
	w.dataLock.Lock()
	defer w.dataLock.Unlock()

	if w.totalLoad.NumQueries == 0 {
		w.totalLoad.FirstUpdate = rec.Begin
	}
	w.totalLoad.NumQueries++
	w.totalLoad.LastUpdate = rec.End
	if rec.Err != nil {
		w.totalLoad.NumErrors++
	}
	w.totalLoad.TotalTimeSecs += rec.TimeSpent().Seconds()
	w.recentLog.Append(rec)
	w.statusWriter.Write(rec)
}

func (w *QueryStatsLogger) TotalLoad() QueriesLoad {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	return w.totalLoad
}

func (w *QueryStatsLogger) RecentLoad() QueriesLoad {
	w.dataLock.RLock()
	defer w.dataLock.RUnlock()
	var ans QueriesLoad
	w.recentLog.ForEach(func(i int, item QueryLog) bool {
		if i == 0 {
			ans.FirstUpdate = item.Begin
		}
		ans.LastUpdate = item.End
		if item.Err != nil {
			ans.NumErrors++
		}
		ans.NumQueries++
		ans.TotalTimeSecs += item.TimeSpent().Seconds()
		return true
	})
	return ans
}

func (w *QueryStatsLogger) Start(ctx context.Context) {
	w.recentLog = collections.NewCircularList[QueryLog](recentLogSize)
	log.Info().Msg("starting query stats logger")
}

func (w *QueryStatsLogger) Stop(ctx context.Context) error {
	log.Info().Msg("shutting down query stats logger")
	return nil
}

func NewQueryStatsLogger(
	statusWriter StatusWriter,
	tz *time.Location,
) *QueryStatsLogger {
	return &QueryStatsLogger{
		statusWriter: statusWriter,
		tz:           tz,
	}
}
