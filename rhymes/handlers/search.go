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

package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/czcorpus/cnc-gokit/unireq"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"urhymes/merror"
	"urhymes/rhymes"
)

// parseSearchReq decodes the /rhymes URL arguments. Zero values
// are filled with documented defaults by the engine itself so the
// handler and direct engine callers agree on them.
func parseSearchReq(ctx *gin.Context) (rhymes.SearchReq, bool) {
	var req rhymes.SearchReq
	req.Query = ctx.Request.URL.Query().Get("q")
	if req.Query == "" {
		uniresp.RespondWithErrorJSON(
			ctx, merror.InputError{Msg: "missing `q` argument"}, http.StatusBadRequest)
		return req, false
	}
	types, err := rhymes.ParseTypes(ctx.Request.URL.Query().Get("types"))
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusUnprocessableEntity)
		return req, false
	}
	req.Types = types
	minSyl, ok := unireq.GetURLIntArgOrFail(ctx, "minSyllables", 0)
	if !ok {
		return req, false
	}
	req.MinSyllables = minSyl
	maxSyl, ok := unireq.GetURLIntArgOrFail(ctx, "maxSyllables", 0)
	if !ok {
		return req, false
	}
	req.MaxSyllables = maxSyl
	maxItems, ok := unireq.GetURLIntArgOrFail(ctx, "maxItems", 0)
	if !ok {
		return req, false
	}
	req.MaxItems = maxItems
	if rawFloor := ctx.Request.URL.Query().Get("rarityFloor"); rawFloor != "" {
		floor, err := strconv.ParseFloat(rawFloor, 64)
		if err != nil {
			uniresp.WriteJSONErrorResponse(
				ctx.Writer,
				uniresp.NewActionErrorFrom(err),
				http.StatusUnprocessableEntity,
			)
			return req, false
		}
		req.RarityFloor = floor
	}
	return req, true
}

// Search godoc
// @Summary      Search
// @Description  Find and rank rhymes of a word or phrase. Candidates are classified into mutually exclusive rhyme types and ranked by a blend of phonetic quality and lexical rarity.
// @Produce      json
// @Param        q query string true "A word or phrase to rhyme; for a phrase, its last word anchors the rhyme"
// @Param        types query string false "Comma-separated rhyme types to enable" default(perfect,slant,assonance)
// @Param        minSyllables query int false "Minimum syllable count of answers" default(1)
// @Param        maxSyllables query int false "Maximum syllable count of answers" default(8)
// @Param        rarityFloor query number false "Minimum rarity score of answers" minimum(0) maximum(1)
// @Param        maxItems query int false "Maximum number of result items" default(20)
// @Success      200 {object} rhymes.SearchResult
// @Failure      404 {object} map[string]any "the anchor word is not in the dictionary"
// @Failure      422 {object} map[string]any "invalid filter values"
// @Router       /rhymes [get]
func (a *Actions) Search(ctx *gin.Context) {
	req, ok := parseSearchReq(ctx)
	if !ok {
		return
	}
	begin := time.Now()
	rawAns, err := a.radapter.CacheResult(
		func() ([]byte, error) {
			result, err := a.engine.Search(req)
			if err != nil {
				return nil, err
			}
			return json.Marshal(result)
		},
		req.CacheKey(),
	)
	a.logQuery("search", begin, err)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, statusForError(err))
		return
	}
	uniresp.WriteRawJSONResponse(ctx.Writer, rawAns)
}
