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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urhymes/phonetics"
)

func mustPhonemes(t *testing.T, raw string) []phonetics.Phoneme {
	t.Helper()
	phonemes, err := phonetics.ParsePronunciation(strings.Fields(raw))
	require.NoError(t, err)
	return phonemes
}

func TestDeriveKey(t *testing.T) {
	tests := []struct {
		name string
		pron string
		exp  Key
	}{
		{
			"single syllable",
			"HH AE1 T",
			Key{Vowel: "AE", Coda: "T", Rime: "AE T"},
		},
		{
			"open syllable has empty coda",
			"T R IY1",
			Key{Vowel: "IY", Coda: "", Rime: "IY"},
		},
		{
			"last primary stress anchors",
			"T R AH1 B AH0 L",
			Key{Vowel: "AH", Coda: "B AH L", Rime: "AH B AH L"},
		},
		{
			"primary beats later secondary",
			"D AW1 N S AY2 D",
			Key{Vowel: "AW", Coda: "N S AY D", Rime: "AW N S AY D"},
		},
		{
			"secondary stress fallback",
			"F UW0 B AA2 R",
			Key{Vowel: "AA", Coda: "R", Rime: "AA R"},
		},
		{
			"unstressed vowel fallback",
			"AH0 V",
			Key{Vowel: "AH", Coda: "V", Rime: "AH V"},
		},
		{
			"no vowel at all",
			"SH",
			Key{Vowel: "", Coda: "SH", Rime: "SH"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.exp, DeriveKey(mustPhonemes(t, tt.pron)))
		})
	}
}

func TestCodaSymbols(t *testing.T) {
	assert.Equal(t, []string{"B", "AH", "L"}, Key{Coda: "B AH L"}.CodaSymbols())
	assert.Nil(t, Key{}.CodaSymbols())
}
