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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	records []QueryLog
}

func (w *recordingWriter) Write(rec QueryLog) {
	w.records = append(w.records, rec)
}

func newTestLogger(t *testing.T) (*QueryStatsLogger, *recordingWriter) {
	t.Helper()
	writer := &recordingWriter{}
	logger := NewQueryStatsLogger(writer, time.UTC)
	logger.Start(context.Background())
	return logger, writer
}

func mkQueryLog(fn string, begin time.Time, dur time.Duration, err error) QueryLog {
	return QueryLog{Func: fn, Begin: begin, End: begin.Add(dur), Err: err}
}

func TestLogAccumulatesTotals(t *testing.T) {
	logger, writer := newTestLogger(t)
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	logger.Log(mkQueryLog("search", t0, 20*time.Millisecond, nil))
	logger.Log(mkQueryLog("search", t0.Add(time.Second), 40*time.Millisecond, nil))
	logger.Log(mkQueryLog("wordInfo", t0.Add(2*time.Second), 10*time.Millisecond, errors.New("boom")))

	total := logger.TotalLoad()
	assert.Equal(t, 3, total.NumQueries)
	assert.Equal(t, 1, total.NumErrors)
	assert.InDelta(t, 0.07, total.TotalTimeSecs, 1e-9)
	assert.Equal(t, t0, total.FirstUpdate)
	assert.Equal(t, t0.Add(2*time.Second+10*time.Millisecond), total.LastUpdate)
	assert.Len(t, writer.records, 3)
}

func TestRecentLoadWindowIsBounded(t *testing.T) {
	logger, _ := newTestLogger(t)
	t0 := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < recentLogSize+50; i++ {
		logger.Log(mkQueryLog("search", t0.Add(time.Duration(i)*time.Second), 10*time.Millisecond, nil))
	}
	total := logger.TotalLoad()
	recent := logger.RecentLoad()
	assert.Equal(t, recentLogSize+50, total.NumQueries)
	assert.Equal(t, recentLogSize, recent.NumQueries)
	assert.Equal(t, total.LastUpdate, recent.LastUpdate)
	assert.True(t, recent.FirstUpdate.After(total.FirstUpdate))
}

func TestAvgTimeSecs(t *testing.T) {
	load := QueriesLoad{NumQueries: 4, TotalTimeSecs: 2.0}
	assert.InDelta(t, 0.5, load.AvgTimeSecs(), 1e-9)
	assert.Equal(t, 0.0, QueriesLoad{}.AvgTimeSecs())
}

func TestQueriesLoadJSONOmitsZeroTimes(t *testing.T) {
	data, err := QueriesLoad{}.MarshalJSON()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "firstUpdate")
	assert.NotContains(t, string(data), "lastUpdate")
	assert.Contains(t, string(data), "\"numQueries\":0")
}
