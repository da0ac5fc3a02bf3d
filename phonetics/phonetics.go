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

// Package phonetics models ARPABET phoneme sequences as used by
// CMU-style pronunciation dictionaries. All the functions here are
// pure and operate on explicit tables so classification stays
// reproducible between runs and versions.
package phonetics

import (
	"strings"

	"urhymes/merror"
)

// Stress represents a vowel stress level as encoded by the
// trailing digit of an ARPABET vowel token (0, 1, 2).
type Stress int

const (
	NoStress  Stress = 0
	Primary   Stress = 1
	Secondary Stress = 2
)

// vowelSymbols covers all the 15 ARPABET vowel phonemes. Any token
// whose stripped form is found here counts as a syllable nucleus.
var vowelSymbols = map[string]bool{
	"AA": true, "AE": true, "AH": true, "AO": true, "AW": true,
	"AY": true, "EH": true, "ER": true, "EY": true, "IH": true,
	"IY": true, "OW": true, "OY": true, "UH": true, "UW": true,
}

// Phoneme is a single pronunciation unit. For vowels, Stress
// carries the syllable emphasis; consonants always have NoStress.
type Phoneme struct {
	Symbol string `json:"symbol"`
	Stress Stress `json:"stress"`
}

// IsVowel tests whether the phoneme is a syllable nucleus.
func (p Phoneme) IsVowel() bool {
	return vowelSymbols[p.Symbol]
}

func (p Phoneme) String() string {
	if p.IsVowel() {
		return p.Symbol + string(rune('0'+int(p.Stress)))
	}
	return p.Symbol
}

// IsVowelSymbol tests a bare (stress-stripped) ARPABET symbol.
func IsVowelSymbol(symbol string) bool {
	return vowelSymbols[symbol]
}

// ParsePhoneme decodes a raw ARPABET token (e.g. "AE1", "T") into
// a Phoneme. A stress digit on a non-vowel token is rejected.
func ParsePhoneme(token string) (Phoneme, error) {
	if token == "" {
		return Phoneme{}, merror.InputError{Msg: "cannot parse an empty phoneme token"}
	}
	symbol := token
	stress := NoStress
	last := token[len(token)-1]
	if last >= '0' && last <= '2' {
		symbol = token[:len(token)-1]
		stress = Stress(last - '0')
	}
	if stress != NoStress && !vowelSymbols[symbol] {
		return Phoneme{}, merror.InputError{
			Msg: "stress digit attached to a non-vowel phoneme: " + token}
	}
	if symbol == "" {
		return Phoneme{}, merror.InputError{Msg: "invalid phoneme token: " + token}
	}
	return Phoneme{Symbol: symbol, Stress: stress}, nil
}

// ParsePronunciation decodes a sequence of raw ARPABET tokens.
func ParsePronunciation(tokens []string) ([]Phoneme, error) {
	ans := make([]Phoneme, 0, len(tokens))
	for _, tok := range tokens {
		p, err := ParsePhoneme(tok)
		if err != nil {
			return nil, err
		}
		ans = append(ans, p)
	}
	return ans, nil
}

// SyllableCount returns the number of vowel nuclei in a pronunciation.
func SyllableCount(phonemes []Phoneme) int {
	var ans int
	for _, p := range phonemes {
		if p.IsVowel() {
			ans++
		}
	}
	return ans
}

// Symbols extracts the stress-stripped symbol sequence.
func Symbols(phonemes []Phoneme) []string {
	ans := make([]string, len(phonemes))
	for i, p := range phonemes {
		ans[i] = p.Symbol
	}
	return ans
}

// EstimateSyllables guesses a syllable count from spelling for words
// missing from the dictionary. It counts orthographic vowel groups
// (with a final silent-e correction) which is a deterministic, if
// rough, stand-in - we never try to infer a pronunciation this way.
func EstimateSyllables(word string) int {
	w := strings.ToLower(word)
	var count int
	prevVowel := false
	for _, ch := range w {
		isV := strings.ContainsRune("aeiouy", ch)
		if isV && !prevVowel {
			count++
		}
		prevVowel = isV
	}
	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}
