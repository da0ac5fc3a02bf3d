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

// Package dict implements the pronunciation store - an immutable
// in-memory mapping from normalized words to their ARPABET
// pronunciation variants, loaded once from a CMU-format dictionary
// file and shared read-only across all concurrent queries.
package dict

import (
	"strings"

	"urhymes/merror"
	"urhymes/phonetics"
)

// Entry is a single pronunciation variant of a word. Word is the
// normalized uppercase token; Variant disambiguates homographs
// (0 for the first listed pronunciation).
type Entry struct {
	Word     string
	Phonemes []phonetics.Phoneme
	Variant  int
}

// SyllableCount returns the number of syllables of this variant.
func (e Entry) SyllableCount() int {
	return phonetics.SyllableCount(e.Phonemes)
}

// QueryPron is a resolved query pronunciation. For multi-token
// queries the rhyme anchor is the last token only, while Syllables
// sums over all the tokens.
type QueryPron struct {
	Query     string
	Anchor    string
	Variants  []Entry
	Syllables int
}

// Store holds all the dictionary entries. It is built once by
// a Loader and never mutated afterwards, so lookups need no
// synchronization.
type Store struct {
	entries map[string][]Entry
	size    int
}

// Lookup returns all pronunciation variants of a word in their
// listed order. An empty answer means the word is out of
// vocabulary.
func (s *Store) Lookup(word string) []Entry {
	return s.entries[NormalizeWord(word)]
}

// NumWords returns the number of distinct words in the store.
func (s *Store) NumWords() int {
	return len(s.entries)
}

// NumEntries returns the total number of pronunciation variants.
func (s *Store) NumEntries() int {
	return s.size
}

// ForEach visits every entry of the store. The iteration order is
// unspecified; callers requiring determinism must sort themselves.
func (s *Store) ForEach(fn func(entry Entry)) {
	for _, variants := range s.entries {
		for _, e := range variants {
			fn(e)
		}
	}
}

// ResolveQuery maps raw query text to the pronunciation used for
// rhyme anchoring. A single word resolves to all its variants.
// For a phrase, the last token anchors the rhyme; the total
// syllable count still covers all the tokens, estimating unknown
// non-final words from their spelling. An unknown anchor produces
// merror.OutOfVocabularyError - we never guess a pronunciation
// for it.
func (s *Store) ResolveQuery(queryText string) (QueryPron, error) {
	normalized := NormalizeQuery(queryText)
	if normalized == "" {
		return QueryPron{}, merror.InputError{Msg: "empty query"}
	}
	tokens := strings.Split(normalized, " ")
	anchor := NormalizeWord(tokens[len(tokens)-1])
	variants := s.entries[anchor]
	if len(variants) == 0 {
		return QueryPron{}, merror.OutOfVocabularyError{Word: anchor}
	}
	var syllables int
	for _, tok := range tokens {
		w := NormalizeWord(tok)
		if w == "" {
			continue
		}
		if entries := s.entries[w]; len(entries) > 0 {
			syllables += entries[0].SyllableCount()

		} else {
			syllables += phonetics.EstimateSyllables(w)
		}
	}
	return QueryPron{
		Query:     normalized,
		Anchor:    anchor,
		Variants:  variants,
		Syllables: syllables,
	}, nil
}
