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

	"github.com/rs/zerolog/log"
)

const (
	// DfltSlantThreshold is the minimum coda similarity (1 minus
	// normalized edit distance) for a shared-vowel pair to count
	// as a slant rhyme rather than mere assonance.
	DfltSlantThreshold = 0.5

	// DfltRarityWeight blends rarity into the final score. Kept
	// well below 0.5 so phonetic quality dominates the ranking and
	// rarity acts as a boost only.
	DfltRarityWeight = 0.25

	// DfltMaxItems limits a search answer when the caller does not
	// ask for a specific size.
	DfltMaxItems = 20

	// DfltMaxSyllables is the upper syllable bound applied when
	// the caller provides none.
	DfltMaxSyllables = 8
)

// Conf gathers the product-tuning values of the engine. They are
// configuration (not code) on purpose: the defaults are documented
// starting points, not derived truths.
type Conf struct {
	SlantThreshold float64 `json:"slantThreshold"`
	RarityWeight   float64 `json:"rarityWeight"`
}

func (conf *Conf) ValidateAndDefaults() error {
	if conf.SlantThreshold == 0 {
		conf.SlantThreshold = DfltSlantThreshold
		log.Warn().
			Float64("value", conf.SlantThreshold).
			Msg("rhymes.slantThreshold not specified, using default")
	}
	if conf.SlantThreshold < 0 || conf.SlantThreshold > 1 {
		return fmt.Errorf("rhymes.slantThreshold must be in [0, 1] (got %f)", conf.SlantThreshold)
	}
	if conf.RarityWeight == 0 {
		conf.RarityWeight = DfltRarityWeight
		log.Warn().
			Float64("value", conf.RarityWeight).
			Msg("rhymes.rarityWeight not specified, using default")
	}
	if conf.RarityWeight < 0 || conf.RarityWeight >= 1 {
		return fmt.Errorf("rhymes.rarityWeight must be in [0, 1) (got %f)", conf.RarityWeight)
	}
	return nil
}
