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

// Package handlers exposes the rhyme engine via HTTP actions.
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"urhymes/dict"
	"urhymes/merror"
	"urhymes/monitoring"
	"urhymes/patterns"
	"urhymes/rarity"
	"urhymes/rdb"
	"urhymes/rhymes"
)

type Actions struct {
	engine      *rhymes.Engine
	store       *dict.Store
	rarityTable *rarity.Table
	patterns    *patterns.Store
	radapter    *rdb.Adapter
	statsLogger *monitoring.QueryStatsLogger
}

// statusForError maps the engine's error taxonomy to HTTP codes.
// An unknown anchor word is a well-formed request for something we
// do not have (404); filter violations are caller errors (422).
func statusForError(err error) int {
	var oovErr merror.OutOfVocabularyError
	var inputErr merror.InputError
	switch {
	case errors.As(err, &oovErr):
		return http.StatusNotFound
	case errors.As(err, &inputErr):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (a *Actions) logQuery(fn string, begin time.Time, err error) {
	if a.statsLogger != nil {
		a.statsLogger.Log(monitoring.QueryLog{
			Func:  fn,
			Begin: begin,
			End:   time.Now(),
			Err:   err,
		})
	}
}

func NewActions(
	engine *rhymes.Engine,
	store *dict.Store,
	rarityTable *rarity.Table,
	patternsStore *patterns.Store,
	radapter *rdb.Adapter,
	statsLogger *monitoring.QueryStatsLogger,
) *Actions {
	return &Actions{
		engine:      engine,
		store:       store,
		rarityTable: rarityTable,
		patterns:    patternsStore,
		radapter:    radapter,
		statsLogger: statsLogger,
	}
}

// PatternLine godoc
// @Summary      PatternLine
// @Description  Fetch a stored example lyric line for a word or phrase. The store is optional - a missing line is a regular `found: false` answer.
// @Produce      json
// @Param        q query string true "A word or phrase to fetch an example line for"
// @Success      200 {object} map[string]any
// @Router       /patterns [get]
func (a *Actions) PatternLine(ctx *gin.Context) {
	q := ctx.Request.URL.Query().Get("q")
	if q == "" {
		uniresp.RespondWithErrorJSON(
			ctx, merror.InputError{Msg: "missing `q` argument"}, http.StatusBadRequest)
		return
	}
	line, found, err := a.patterns.LineFor(q)
	if err != nil {
		uniresp.WriteJSONErrorResponse(
			ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusInternalServerError)
		return
	}
	if !found {
		uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"found": false})
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, map[string]any{"found": true, "line": line})
}
