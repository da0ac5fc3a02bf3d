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
	"urhymes/dict"
	"urhymes/phonetics"
)

// Match is a classified (query, candidate) relationship. Variant
// records which candidate pronunciation produced the verdict so
// downstream filters (syllable bounds) use the same variant.
type Match struct {
	Type    Type
	Quality float64
	Variant dict.Entry
}

// betterThan defines the total order used to reduce variant pairs:
// quality first, then type strength. Remaining ties are resolved
// by the caller's fixed iteration order over variants.
func (m Match) betterThan(other Match) bool {
	if m.Quality != other.Quality {
		return m.Quality > other.Quality
	}
	return m.Type.Strength() > other.Type.Strength()
}

// Classifier decides the rhyme type and continuous quality score
// of a pronunciation pair. The slant threshold is the only tuning
// knob; everything else is fixed tables and pure functions.
type Classifier struct {
	slantThreshold float64
}

func NewClassifier(slantThreshold float64) *Classifier {
	return &Classifier{slantThreshold: slantThreshold}
}

// Classify compares a query pronunciation with a candidate one.
// Verdicts are mutually exclusive - exactly the strongest
// applicable type is returned:
//
//	equal rime                      -> perfect (quality 1)
//	equal vowel, differing codas    -> slant or assonance by coda similarity
//	differing vowel, equal coda     -> consonance scored by vowel closeness
//	anything else                   -> no relationship (ok=false)
func (c *Classifier) Classify(query, cand []phonetics.Phoneme) (Type, float64, bool) {
	qKey := DeriveKey(query)
	cKey := DeriveKey(cand)
	if qKey.Rime == cKey.Rime {
		return TypePerfect, 1.0, true
	}
	if qKey.Vowel != "" && qKey.Vowel == cKey.Vowel {
		similarity := 1 - phonetics.NormalizedDistance(qKey.CodaSymbols(), cKey.CodaSymbols())
		if similarity >= c.slantThreshold {
			return TypeSlant, 0.5 + 0.4*similarity, true
		}
		return TypeAssonance, 0.3 + 0.2*similarity, true
	}
	if qKey.Coda != "" && qKey.Coda == cKey.Coda {
		closeness := phonetics.VowelCloseness(qKey.Vowel, cKey.Vowel)
		return TypeConsonance, 0.2 + 0.1*closeness, true
	}
	return "", 0, false
}

// ClassifyBest reduces homograph ambiguity: it classifies every
// (query variant, candidate variant) pair and keeps the best
// verdict by quality, then by type strength, then by listed
// variant order. The reduction is a pure function of the variant
// sets, so the answer does not depend on storage order tricks.
func (c *Classifier) ClassifyBest(queryVariants, candVariants []dict.Entry) (Match, bool) {
	var best Match
	var found bool
	for _, qv := range queryVariants {
		for _, cv := range candVariants {
			t, quality, ok := c.Classify(qv.Phonemes, cv.Phonemes)
			if !ok {
				continue
			}
			m := Match{Type: t, Quality: quality, Variant: cv}
			if !found || m.betterThan(best) {
				best = m
				found = true
			}
		}
	}
	return best, found
}
