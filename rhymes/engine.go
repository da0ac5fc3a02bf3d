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
	"fmt"
	"slices"
	"strings"

	"urhymes/dict"
	"urhymes/merror"
	"urhymes/rarity"
)

// SearchReq describes one rhyme query. Zero values of the optional
// fields select the documented defaults.
type SearchReq struct {
	Query        string  `json:"query"`
	Types        []Type  `json:"types"`
	MinSyllables int     `json:"minSyllables"`
	MaxSyllables int     `json:"maxSyllables"`
	RarityFloor  float64 `json:"rarityFloor"`
	MaxItems     int     `json:"maxItems"`
}

// CacheKey provides a canonical string form of the request used
// as a result cache key component.
func (req SearchReq) CacheKey() string {
	types := make([]string, len(req.Types))
	for i, t := range req.Types {
		types[i] = t.String()
	}
	slices.Sort(types)
	return fmt.Sprintf(
		"%s|%s|%d|%d|%f|%d",
		req.Query, strings.Join(types, ","), req.MinSyllables,
		req.MaxSyllables, req.RarityFloor, req.MaxItems,
	)
}

func (req *SearchReq) validateAndDefaults() error {
	if strings.TrimSpace(req.Query) == "" {
		return merror.InputError{Msg: "missing query"}
	}
	if len(req.Types) == 0 {
		req.Types = DefaultTypes()
	}
	for _, t := range req.Types {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	if req.MinSyllables == 0 {
		req.MinSyllables = 1
	}
	if req.MaxSyllables == 0 {
		req.MaxSyllables = DfltMaxSyllables
	}
	if req.MaxItems == 0 {
		req.MaxItems = DfltMaxItems
	}
	if req.MinSyllables < 1 {
		return merror.InputError{Msg: "minSyllables must be at least 1"}
	}
	if req.MinSyllables > req.MaxSyllables {
		return merror.InputError{Msg: "minSyllables must not exceed maxSyllables"}
	}
	if req.RarityFloor < 0 || req.RarityFloor > 1 {
		return merror.InputError{Msg: "rarityFloor must be in [0, 1]"}
	}
	if req.MaxItems < 1 {
		return merror.InputError{Msg: "maxItems must be at least 1"}
	}
	return nil
}

// Engine is the top-level query orchestrator. It owns nothing
// mutable - just read-only handles to the shared store, index and
// rarity table - so Search is a pure function of its arguments
// and the startup-time data.
type Engine struct {
	store        *dict.Store
	index        *Index
	rarityTable  *rarity.Table
	classifier   *Classifier
	rarityWeight float64
}

func NewEngine(
	store *dict.Store,
	index *Index,
	rarityTable *rarity.Table,
	conf Conf,
) *Engine {
	return &Engine{
		store:        store,
		index:        index,
		rarityTable:  rarityTable,
		classifier:   NewClassifier(conf.SlantThreshold),
		rarityWeight: conf.RarityWeight,
	}
}

// candidatePool gathers the union of index buckets applying to the
// enabled types over every query pronunciation variant. The pool
// is a superset - the classifier decides final membership and the
// (single) reported type of each word.
func (eng *Engine) candidatePool(qp dict.QueryPron, types []Type) map[string]bool {
	pool := make(map[string]bool)
	for _, variant := range qp.Variants {
		key := DeriveKey(variant.Phonemes)
		for _, t := range types {
			for _, word := range eng.index.CandidatesForType(t, key) {
				pool[word] = true
			}
		}
	}
	delete(pool, qp.Anchor)
	return pool
}

// Search resolves, classifies, scores, filters and ranks. It fails
// fast with merror.InputError on boundary violations and with
// merror.OutOfVocabularyError when the anchor word is unknown; an
// empty candidate list is returned as a regular result.
func (eng *Engine) Search(req SearchReq) (SearchResult, error) {
	if err := req.validateAndDefaults(); err != nil {
		return SearchResult{}, err
	}
	qp, err := eng.store.ResolveQuery(req.Query)
	if err != nil {
		return SearchResult{}, err
	}

	enabled := make(map[Type]bool, len(req.Types))
	for _, t := range req.Types {
		enabled[t] = true
	}

	candidates := make([]WordCandidate, 0, 50)
	for word := range eng.candidatePool(qp, req.Types) {
		match, ok := eng.classifier.ClassifyBest(qp.Variants, eng.store.Lookup(word))
		if !ok || !enabled[match.Type] {
			continue
		}
		syllables := match.Variant.SyllableCount()
		if syllables < req.MinSyllables || syllables > req.MaxSyllables {
			continue
		}
		rarityScore := eng.rarityTable.ScoreOf(word)
		if rarityScore < req.RarityFloor {
			continue
		}
		candidates = append(candidates, WordCandidate{
			Word:          word,
			RhymeType:     match.Type,
			QualityScore:  match.Quality,
			RarityScore:   rarityScore,
			FinalScore:    match.Quality*(1-eng.rarityWeight) + rarityScore*eng.rarityWeight,
			SyllableCount: syllables,
		})
	}

	slices.SortFunc(candidates, func(a, b WordCandidate) int {
		if a.FinalScore != b.FinalScore {
			if a.FinalScore > b.FinalScore {
				return -1
			}
			return 1
		}
		if a.RarityScore != b.RarityScore {
			if a.RarityScore > b.RarityScore {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Word, b.Word)
	})
	if len(candidates) > req.MaxItems {
		candidates = candidates[:req.MaxItems]
	}

	return SearchResult{
		Query:          qp.Query,
		Anchor:         qp.Anchor,
		QuerySyllables: qp.Syllables,
		NumVariants:    len(qp.Variants),
		Candidates:     candidates,
		Total:          len(candidates),
	}, nil
}
