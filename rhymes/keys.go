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
	"strings"

	"urhymes/phonetics"
)

// Key is the derived comparison key of a pronunciation. Vowel is
// the anchor vowel symbol with stress stripped, Coda the space
// joined symbols following it to the end of the word and Rime
// the two concatenated (the perfect-rhyme bucket key). A word
// without any vowel has an empty Vowel and its whole phoneme
// sequence as Coda.
type Key struct {
	Vowel string `json:"vowelKey"`
	Coda  string `json:"codaKey"`
	Rime  string `json:"rimeKey"`
}

// CodaSymbols splits the coda key back into phoneme symbols.
func (k Key) CodaSymbols() []string {
	if k.Coda == "" {
		return nil
	}
	return strings.Split(k.Coda, " ")
}

// anchorIdx finds the rhyme anchor of a pronunciation: the last
// primary-stressed vowel, falling back to the last secondary
// stressed one, falling back to the last vowel of any kind.
// Returns -1 when there is no vowel at all.
func anchorIdx(phonemes []phonetics.Phoneme) int {
	lastPrimary, lastSecondary, lastVowel := -1, -1, -1
	for i, p := range phonemes {
		if !p.IsVowel() {
			continue
		}
		lastVowel = i
		switch p.Stress {
		case phonetics.Primary:
			lastPrimary = i
		case phonetics.Secondary:
			lastSecondary = i
		}
	}
	if lastPrimary != -1 {
		return lastPrimary
	}
	if lastSecondary != -1 {
		return lastSecondary
	}
	return lastVowel
}

// DeriveKey computes the rhyme key of a pronunciation.
func DeriveKey(phonemes []phonetics.Phoneme) Key {
	idx := anchorIdx(phonemes)
	if idx == -1 {
		coda := strings.Join(phonetics.Symbols(phonemes), " ")
		return Key{Coda: coda, Rime: coda}
	}
	vowel := phonemes[idx].Symbol
	coda := strings.Join(phonetics.Symbols(phonemes[idx+1:]), " ")
	rime := vowel
	if coda != "" {
		rime = vowel + " " + coda
	}
	return Key{Vowel: vowel, Coda: coda, Rime: rime}
}
