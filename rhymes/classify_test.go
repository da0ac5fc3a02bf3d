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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urhymes/dict"
)

func TestClassifyPerfect(t *testing.T) {
	cls := NewClassifier(DfltSlantThreshold)
	typ, quality, ok := cls.Classify(
		mustPhonemes(t, "HH AE1 T"), mustPhonemes(t, "K AE1 T"))
	require.True(t, ok)
	assert.Equal(t, TypePerfect, typ)
	assert.Equal(t, 1.0, quality)
}

func TestClassifySlant(t *testing.T) {
	cls := NewClassifier(DfltSlantThreshold)
	// codas T vs. S T, one edit over two symbols
	typ, quality, ok := cls.Classify(
		mustPhonemes(t, "HH AE1 T"), mustPhonemes(t, "F AE1 S T"))
	require.True(t, ok)
	assert.Equal(t, TypeSlant, typ)
	assert.InDelta(t, 0.7, quality, 1e-9)
}

func TestClassifyAssonance(t *testing.T) {
	cls := NewClassifier(DfltSlantThreshold)
	typ, quality, ok := cls.Classify(
		mustPhonemes(t, "HH AE1 T"), mustPhonemes(t, "B AE1 D"))
	require.True(t, ok)
	assert.Equal(t, TypeAssonance, typ)
	assert.InDelta(t, 0.3, quality, 1e-9)
}

func TestClassifyConsonance(t *testing.T) {
	cls := NewClassifier(DfltSlantThreshold)
	typ, quality, ok := cls.Classify(
		mustPhonemes(t, "HH AE1 T"), mustPhonemes(t, "B IH1 T"))
	require.True(t, ok)
	assert.Equal(t, TypeConsonance, typ)
	assert.InDelta(t, 0.265, quality, 1e-9)
}

func TestClassifyNoRelationship(t *testing.T) {
	cls := NewClassifier(DfltSlantThreshold)
	_, _, ok := cls.Classify(
		mustPhonemes(t, "HH AE1 T"), mustPhonemes(t, "M UW1 N"))
	assert.False(t, ok)
}

func TestClassifySymmetricVerdict(t *testing.T) {
	cls := NewClassifier(DfltSlantThreshold)
	pairs := [][2]string{
		{"HH AE1 T", "K AE1 T"},
		{"HH AE1 T", "F AE1 S T"},
		{"HH AE1 T", "B IH1 T"},
		{"T AY1 M", "K L AY1 M"},
	}
	for _, pair := range pairs {
		a := mustPhonemes(t, pair[0])
		b := mustPhonemes(t, pair[1])
		typAB, qualAB, okAB := cls.Classify(a, b)
		typBA, qualBA, okBA := cls.Classify(b, a)
		assert.Equal(t, okAB, okBA)
		assert.Equal(t, typAB, typBA)
		assert.InDelta(t, qualAB, qualBA, 1e-9)
	}
}

func TestClassifyThresholdBoundary(t *testing.T) {
	// similarity exactly at the threshold classifies as slant
	cls := NewClassifier(0.5)
	typ, _, ok := cls.Classify(
		mustPhonemes(t, "HH AE1 T"), mustPhonemes(t, "F AE1 S T"))
	require.True(t, ok)
	assert.Equal(t, TypeSlant, typ)

	cls = NewClassifier(0.6)
	typ, _, ok = cls.Classify(
		mustPhonemes(t, "HH AE1 T"), mustPhonemes(t, "F AE1 S T"))
	require.True(t, ok)
	assert.Equal(t, TypeAssonance, typ)
}

func TestClassifyBestPicksStrongestVariantPair(t *testing.T) {
	cls := NewClassifier(DfltSlantThreshold)
	// READ has two pronunciations; only the second rhymes with BED
	queryVariants := []dict.Entry{
		{Word: "BED", Phonemes: mustPhonemes(t, "B EH1 D"), Variant: 0},
	}
	candVariants := []dict.Entry{
		{Word: "READ", Phonemes: mustPhonemes(t, "R IY1 D"), Variant: 0},
		{Word: "READ", Phonemes: mustPhonemes(t, "R EH1 D"), Variant: 1},
	}
	match, ok := cls.ClassifyBest(queryVariants, candVariants)
	require.True(t, ok)
	assert.Equal(t, TypePerfect, match.Type)
	assert.Equal(t, 1.0, match.Quality)
	assert.Equal(t, 1, match.Variant.Variant)
}

func TestClassifyBestDeterministicOrder(t *testing.T) {
	cls := NewClassifier(DfltSlantThreshold)
	queryVariants := []dict.Entry{
		{Word: "BED", Phonemes: mustPhonemes(t, "B EH1 D"), Variant: 0},
	}
	candVariants := []dict.Entry{
		{Word: "READ", Phonemes: mustPhonemes(t, "R IY1 D"), Variant: 0},
		{Word: "READ", Phonemes: mustPhonemes(t, "R EH1 D"), Variant: 1},
	}
	first, ok := cls.ClassifyBest(queryVariants, candVariants)
	require.True(t, ok)
	for i := 0; i < 20; i++ {
		again, ok := cls.ClassifyBest(queryVariants, candVariants)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestClassifyBestNoMatch(t *testing.T) {
	cls := NewClassifier(DfltSlantThreshold)
	_, ok := cls.ClassifyBest(
		[]dict.Entry{{Word: "HAT", Phonemes: mustPhonemes(t, "HH AE1 T")}},
		[]dict.Entry{{Word: "MOON", Phonemes: mustPhonemes(t, "M UW1 N")}},
	)
	assert.False(t, ok)
}
