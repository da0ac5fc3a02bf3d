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
	"time"

	"github.com/bytedance/sonic"
)

// QueryLog records one handled search operation.
type QueryLog struct {
	Func  string    `json:"func"`
	Begin time.Time `json:"begin"`
	End   time.Time `json:"end"`
	Err   error     `json:"error"`
}

// TimeSpent returns the operation's processing duration.
func (ql QueryLog) TimeSpent() time.Duration {
	return ql.End.Sub(ql.Begin)
}

// ---

// QueriesLoad aggregates handled search operations over a time
// window.
type QueriesLoad struct {
	NumQueries    int
	TotalTimeSecs float64
	NumErrors     int
	FirstUpdate   time.Time
	LastUpdate    time.Time
}

// TotalSpan returns time span covered by the load info
func (ql QueriesLoad) TotalSpan() time.Duration {
	return ql.LastUpdate.Sub(ql.FirstUpdate)
}

func (ql QueriesLoad) AvgTimeSecs() float64 {
	if ql.NumQueries == 0 {
		return 0
	}
	return ql.TotalTimeSecs / float64(ql.NumQueries)
}

func (ql QueriesLoad) MarshalJSON() ([]byte, error) {
	var t0, t1 *time.Time
	if !ql.FirstUpdate.IsZero() {
		t0 = &ql.FirstUpdate
	}
	if !ql.LastUpdate.IsZero() {
		t1 = &ql.LastUpdate
	}
	return sonic.Marshal(
		struct {
			NumQueries    int        `json:"numQueries"`
			TotalTimeSecs float64    `json:"totalTimeSecs"`
			NumErrors     int        `json:"numErrors"`
			FirstUpdate   *time.Time `json:"firstUpdate,omitempty"`
			LastUpdate    *time.Time `json:"lastUpdate,omitempty"`
			AvgTimeSecs   float64    `json:"avgTimeSecs"`
		}{
			NumQueries:    ql.NumQueries,
			TotalTimeSecs: ql.TotalTimeSecs,
			NumErrors:     ql.NumErrors,
			FirstUpdate:   t0,
			LastUpdate:    t1,
			AvgTimeSecs:   ql.AvgTimeSecs(),
		},
	)
}
