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

package rhymes

import (
	"github.com/bytedance/sonic"

	"urhymes/general"
)

// WordCandidate is a single ranked search answer item.
type WordCandidate struct {
	Word          string  `json:"word"`
	RhymeType     Type    `json:"rhymeType"`
	QualityScore  float64 `json:"qualityScore"`
	RarityScore   float64 `json:"rarityScore"`
	FinalScore    float64 `json:"finalScore"`
	SyllableCount int     `json:"syllableCount"`
}

// MarshalJSON rounds the continuous scores so the public API stays
// stable with respect to floating point noise.
func (wc WordCandidate) MarshalJSON() ([]byte, error) {
	type alias WordCandidate
	rounded := alias(wc)
	rounded.QualityScore = general.NormRound(wc.QualityScore)
	rounded.RarityScore = general.NormRound(wc.RarityScore)
	rounded.FinalScore = general.NormRound(wc.FinalScore)
	return sonic.Marshal(rounded)
}

// SearchResult is a complete search answer. An empty Candidates
// list is a valid result - the out-of-vocabulary condition is
// reported via error instead and never as an empty list.
type SearchResult struct {
	Query          string          `json:"query"`
	Anchor         string          `json:"anchor"`
	QuerySyllables int             `json:"querySyllables"`
	NumVariants    int             `json:"numVariants"`
	Candidates     []WordCandidate `json:"candidates"`
	Total          int             `json:"total"`
}
