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
	"net/http"
	"time"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"

	"urhymes/dict"
	"urhymes/merror"
	"urhymes/phonetics"
	"urhymes/rhymes"
)

type pronVariant struct {
	Variant       int        `json:"variant"`
	Phonemes      []string   `json:"phonemes"`
	SyllableCount int        `json:"syllableCount"`
	StressPattern string     `json:"stressPattern"`
	MetricalFoot  string     `json:"metricalFoot"`
	RhymeKey      rhymes.Key `json:"rhymeKey"`
}

type wordInfoResponse struct {
	Word        string        `json:"word"`
	Variants    []pronVariant `json:"variants"`
	RarityScore float64       `json:"rarityScore"`
}

func describeVariant(entry dict.Entry) pronVariant {
	raw := make([]string, len(entry.Phonemes))
	for i, p := range entry.Phonemes {
		raw[i] = p.String()
	}
	pattern := phonetics.StressPattern(entry.Phonemes)
	return pronVariant{
		Variant:       entry.Variant,
		Phonemes:      raw,
		SyllableCount: entry.SyllableCount(),
		StressPattern: pattern,
		MetricalFoot:  phonetics.MetricalName(pattern),
		RhymeKey:      rhymes.DeriveKey(entry.Phonemes),
	}
}

// WordInfo godoc
// @Summary      WordInfo
// @Description  Show all pronunciation variants of a word along with its derived rhyme keys, stress pattern, metrical foot and rarity score.
// @Produce      json
// @Param        q query string true "A word to describe"
// @Success      200 {object} wordInfoResponse
// @Failure      404 {object} map[string]any "the word is not in the dictionary"
// @Router       /word-info [get]
func (a *Actions) WordInfo(ctx *gin.Context) {
	q := ctx.Request.URL.Query().Get("q")
	if q == "" {
		uniresp.RespondWithErrorJSON(
			ctx, merror.InputError{Msg: "missing `q` argument"}, http.StatusBadRequest)
		return
	}
	begin := time.Now()
	word := dict.NormalizeWord(q)
	entries := a.store.Lookup(word)
	if len(entries) == 0 {
		err := merror.OutOfVocabularyError{Word: word}
		a.logQuery("wordInfo", begin, err)
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusNotFound)
		return
	}
	ans := wordInfoResponse{
		Word:        word,
		Variants:    make([]pronVariant, len(entries)),
		RarityScore: a.rarityTable.ScoreOf(word),
	}
	for i, entry := range entries {
		ans.Variants[i] = describeVariant(entry)
	}
	a.logQuery("wordInfo", begin, nil)
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}
