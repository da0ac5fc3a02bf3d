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

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

type Actions struct {
	logger   *QueryStatsLogger
	location *time.Location
}

// QueriesLoad godoc
// @Summary      QueriesLoad
// @Description  Show total and recent search operation statistics of this instance
// @Produce      json
// @Success      200 {object} map[string]any
// @Router       /monitoring/queries-load [get]
func (a *Actions) QueriesLoad(ctx *gin.Context) {
	uniresp.WriteJSONResponse(
		ctx.Writer,
		map[string]any{
			"total":  a.logger.TotalLoad(),
			"recent": a.logger.RecentLoad(),
		},
	)
}

func NewActions(
	logger *QueryStatsLogger,
	location *time.Location,
) *Actions {
	return &Actions{
		logger:   logger,
		location: location,
	}
}
