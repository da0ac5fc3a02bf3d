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
	"sort"

	"github.com/rs/zerolog/log"

	"urhymes/dict"
)

// Index maps rhyme keys to the words sharing them, providing the
// candidate pools for each rhyme type. A word appears in a bucket
// at most once even when several of its pronunciation variants
// produce the same key. Built in a single pass and immutable
// afterwards.
type Index struct {
	byRime  map[string][]string
	byVowel map[string][]string
	byCoda  map[string][]string
}

// CandidatesForType returns the candidate word pool of a rhyme
// type for a query key. Perfect pulls the exact rime bucket,
// slant and assonance the matching-vowel bucket and consonance
// the matching-coda bucket (an empty coda never has a bucket).
// The pools are candidate supersets only - the classifier makes
// the final, mutually exclusive type decision.
func (idx *Index) CandidatesForType(t Type, key Key) []string {
	switch t {
	case TypePerfect:
		return idx.byRime[key.Rime]
	case TypeSlant, TypeAssonance:
		if key.Vowel == "" {
			return nil
		}
		return idx.byVowel[key.Vowel]
	case TypeConsonance:
		if key.Coda == "" {
			return nil
		}
		return idx.byCoda[key.Coda]
	}
	return nil
}

// NumRimes returns the number of distinct rime keys.
func (idx *Index) NumRimes() int {
	return len(idx.byRime)
}

func insertOnce(buckets map[string]map[string]bool, key, word string) {
	if key == "" {
		return
	}
	bucket, ok := buckets[key]
	if !ok {
		bucket = make(map[string]bool)
		buckets[key] = bucket
	}
	bucket[word] = true
}

func freeze(buckets map[string]map[string]bool) map[string][]string {
	ans := make(map[string][]string, len(buckets))
	for key, bucket := range buckets {
		words := make([]string, 0, len(bucket))
		for w := range bucket {
			words = append(words, w)
		}
		sort.Strings(words)
		ans[key] = words
	}
	return ans
}

// BuildIndex derives a rhyme key for every pronunciation variant
// in the store and fills the three bucket mappings. Bucket word
// lists are sorted so all downstream iteration is deterministic.
func BuildIndex(store *dict.Store) *Index {
	byRime := make(map[string]map[string]bool)
	byVowel := make(map[string]map[string]bool)
	byCoda := make(map[string]map[string]bool)
	store.ForEach(func(entry dict.Entry) {
		key := DeriveKey(entry.Phonemes)
		insertOnce(byRime, key.Rime, entry.Word)
		insertOnce(byVowel, key.Vowel, entry.Word)
		insertOnce(byCoda, key.Coda, entry.Word)
	})
	ans := &Index{
		byRime:  freeze(byRime),
		byVowel: freeze(byVowel),
		byCoda:  freeze(byCoda),
	}
	log.Info().
		Int("numRimeKeys", len(ans.byRime)).
		Int("numVowelKeys", len(ans.byVowel)).
		Int("numCodaKeys", len(ans.byCoda)).
		Msg("built rhyme key index")
	return ans
}
