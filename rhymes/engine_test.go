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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"urhymes/merror"
	"urhymes/rarity"
)

const testFreqSrc = "cat\t5.2\ngnat\t2.4\nthat\t6.0\n"

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	store := newTestStore(t)
	table, err := rarity.Load(strings.NewReader(testFreqSrc), 0)
	require.NoError(t, err)
	return NewEngine(store, BuildIndex(store), table, Conf{
		SlantThreshold: DfltSlantThreshold,
		RarityWeight:   DfltRarityWeight,
	})
}

func candidateWords(res SearchResult) []string {
	ans := make([]string, len(res.Candidates))
	for i, c := range res.Candidates {
		ans[i] = c.Word
	}
	return ans
}

func findCandidate(res SearchResult, word string) (WordCandidate, bool) {
	for _, c := range res.Candidates {
		if c.Word == word {
			return c, true
		}
	}
	return WordCandidate{}, false
}

func TestSearchPerfectRhymes(t *testing.T) {
	eng := newTestEngine(t)
	res, err := eng.Search(SearchReq{Query: "hat"})
	require.NoError(t, err)
	assert.Equal(t, "HAT", res.Anchor)
	assert.Equal(t, 1, res.QuerySyllables)
	for _, word := range []string{"CAT", "BAT", "THAT", "GNAT"} {
		c, found := findCandidate(res, word)
		require.True(t, found, "missing %s", word)
		assert.Equal(t, TypePerfect, c.RhymeType)
		assert.Equal(t, 1.0, c.QualityScore)
	}
}

func TestSearchRankingBlendsRarity(t *testing.T) {
	eng := newTestEngine(t)
	res, err := eng.Search(SearchReq{Query: "hat"})
	require.NoError(t, err)
	// perfect tier ordered by the rarity blend, then the weaker types
	assert.Equal(t, []string{"GNAT", "BAT", "CAT", "THAT", "FAST", "BAD"}, candidateWords(res))
	gnat, _ := findCandidate(res, "GNAT")
	assert.InDelta(t, 1-2.4/8, gnat.RarityScore, 1e-9)
	assert.InDelta(t, 1.0*0.75+(1-2.4/8)*0.25, gnat.FinalScore, 1e-9)
	fast, _ := findCandidate(res, "FAST")
	assert.Equal(t, TypeSlant, fast.RhymeType)
	assert.InDelta(t, 0.7, fast.QualityScore, 1e-9)
}

func TestSearchExcludesQueryWordItself(t *testing.T) {
	eng := newTestEngine(t)
	res, err := eng.Search(SearchReq{Query: "hat"})
	require.NoError(t, err)
	assert.NotContains(t, candidateWords(res), "HAT")
}

func TestSearchConsonanceRequiresOptIn(t *testing.T) {
	eng := newTestEngine(t)
	res, err := eng.Search(SearchReq{Query: "hat"})
	require.NoError(t, err)
	assert.NotContains(t, candidateWords(res), "BIT")

	res, err = eng.Search(SearchReq{Query: "hat", Types: []Type{TypeConsonance}})
	require.NoError(t, err)
	assert.Equal(t, []string{"BIT"}, candidateWords(res))
	assert.Equal(t, TypeConsonance, res.Candidates[0].RhymeType)
	assert.InDelta(t, 0.265, res.Candidates[0].QualityScore, 1e-9)
}

func TestSearchExclusiveTypePerWord(t *testing.T) {
	eng := newTestEngine(t)
	res, err := eng.Search(SearchReq{
		Query: "hat",
		Types: []Type{TypePerfect, TypeSlant, TypeAssonance, TypeConsonance},
	})
	require.NoError(t, err)
	seen := make(map[string]int)
	for _, c := range res.Candidates {
		seen[c.Word]++
	}
	for word, n := range seen {
		assert.Equal(t, 1, n, "word %s listed more than once", word)
	}
	// words in the exact rime bucket never degrade to a weaker type
	cat, _ := findCandidate(res, "CAT")
	assert.Equal(t, TypePerfect, cat.RhymeType)
}

func TestSearchNoFabricatedMatches(t *testing.T) {
	eng := newTestEngine(t)
	res, err := eng.Search(SearchReq{Query: "orange", Types: []Type{TypePerfect}})
	require.NoError(t, err)
	assert.Empty(t, res.Candidates)
	assert.Equal(t, 0, res.Total)
}

func TestSearchOOV(t *testing.T) {
	eng := newTestEngine(t)
	_, err := eng.Search(SearchReq{Query: "zzyzxqq"})
	var oov merror.OutOfVocabularyError
	require.True(t, errors.As(err, &oov))
	assert.Equal(t, "ZZYZXQQ", oov.Word)
}

func TestSearchInvalidBounds(t *testing.T) {
	eng := newTestEngine(t)
	var inputErr merror.InputError

	_, err := eng.Search(SearchReq{Query: "hat", MinSyllables: 3, MaxSyllables: 2})
	assert.True(t, errors.As(err, &inputErr))

	_, err = eng.Search(SearchReq{Query: "hat", RarityFloor: 1.5})
	assert.True(t, errors.As(err, &inputErr))

	_, err = eng.Search(SearchReq{Query: "hat", MaxItems: -1})
	assert.True(t, errors.As(err, &inputErr))

	_, err = eng.Search(SearchReq{Query: "hat", Types: []Type{"banana"}})
	assert.True(t, errors.As(err, &inputErr))

	_, err = eng.Search(SearchReq{Query: "   "})
	assert.True(t, errors.As(err, &inputErr))
}

func TestSearchSyllableBounds(t *testing.T) {
	eng := newTestEngine(t)
	res, err := eng.Search(SearchReq{Query: "double", MinSyllables: 2, MaxSyllables: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"BUBBLE", "TROUBLE"}, candidateWords(res))

	res, err = eng.Search(SearchReq{Query: "double", MinSyllables: 1, MaxSyllables: 1})
	require.NoError(t, err)
	assert.Empty(t, res.Candidates)
}

func TestSearchRarityFloorMonotonic(t *testing.T) {
	eng := newTestEngine(t)
	unfiltered, err := eng.Search(SearchReq{Query: "hat"})
	require.NoError(t, err)
	filtered, err := eng.Search(SearchReq{Query: "hat", RarityFloor: 0.4})
	require.NoError(t, err)
	assert.Less(t, len(filtered.Candidates), len(unfiltered.Candidates))
	for _, c := range filtered.Candidates {
		assert.GreaterOrEqual(t, c.RarityScore, 0.4)
		_, found := findCandidate(unfiltered, c.Word)
		assert.True(t, found, "filtered result contains an extra word %s", c.Word)
	}
}

func TestSearchMaxItemsTruncates(t *testing.T) {
	eng := newTestEngine(t)
	res, err := eng.Search(SearchReq{Query: "hat", MaxItems: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"GNAT", "BAT"}, candidateWords(res))
	assert.Equal(t, 2, res.Total)
}

func TestSearchIdempotent(t *testing.T) {
	eng := newTestEngine(t)
	req := SearchReq{Query: "hat", Types: []Type{TypePerfect, TypeSlant}}
	first, err := eng.Search(req)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := eng.Search(req)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSearchHomographQuery(t *testing.T) {
	eng := newTestEngine(t)
	res, err := eng.Search(SearchReq{Query: "bed"})
	require.NoError(t, err)
	read, found := findCandidate(res, "READ")
	require.True(t, found)
	assert.Equal(t, TypePerfect, read.RhymeType)
	assert.Equal(t, 1.0, read.QualityScore)
	assert.Equal(t, 1, read.SyllableCount)
}

func TestSearchPhraseAnchorsLastWord(t *testing.T) {
	eng := newTestEngine(t)
	res, err := eng.Search(SearchReq{Query: "double trouble"})
	require.NoError(t, err)
	assert.Equal(t, "TROUBLE", res.Anchor)
	assert.Equal(t, 4, res.QuerySyllables)
	assert.Equal(t, []string{"BUBBLE", "DOUBLE"}, candidateWords(res))
}

func TestSearchReqCacheKey(t *testing.T) {
	a := SearchReq{Query: "hat", Types: []Type{TypeSlant, TypePerfect}}
	b := SearchReq{Query: "hat", Types: []Type{TypePerfect, TypeSlant}}
	assert.Equal(t, a.CacheKey(), b.CacheKey())
	c := SearchReq{Query: "hat", Types: []Type{TypePerfect}}
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())
}
