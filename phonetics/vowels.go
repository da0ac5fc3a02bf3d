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

package phonetics

// vowelPos places each ARPABET vowel on an articulatory plane:
// height (0 = low/open, 1 = high/close) and backness (0 = front,
// 1 = back). Diphthongs use the position of their starting point.
// The table is fixed - changing it changes classification results,
// so any modification must bump the scoring compatibility.
type vowelPos struct {
	height    float64
	backness  float64
	diphthong bool
}

var vowelTable = map[string]vowelPos{
	"IY": {height: 1.0, backness: 0.0},
	"IH": {height: 0.8, backness: 0.15},
	"EY": {height: 0.65, backness: 0.1, diphthong: true},
	"EH": {height: 0.5, backness: 0.2},
	"AE": {height: 0.2, backness: 0.25},
	"AA": {height: 0.0, backness: 0.8},
	"AO": {height: 0.3, backness: 0.95},
	"OW": {height: 0.55, backness: 0.9, diphthong: true},
	"UH": {height: 0.8, backness: 0.85},
	"UW": {height: 1.0, backness: 1.0},
	"AH": {height: 0.45, backness: 0.55},
	"ER": {height: 0.5, backness: 0.5},
	"AY": {height: 0.1, backness: 0.5, diphthong: true},
	"AW": {height: 0.1, backness: 0.6, diphthong: true},
	"OY": {height: 0.35, backness: 0.9, diphthong: true},
}

// VowelCloseness returns a similarity in [0, 1] between two vowel
// phonemes based on their articulation proximity. Identical vowels
// give 1; a monophthong vs. diphthong mismatch gets an extra
// penalty; unknown symbols give 0.
func VowelCloseness(a, b string) float64 {
	if a == b {
		if _, ok := vowelTable[a]; ok {
			return 1
		}
		return 0
	}
	pa, okA := vowelTable[a]
	pb, okB := vowelTable[b]
	if !okA || !okB {
		return 0
	}
	dist := (abs(pa.height-pb.height) + abs(pa.backness-pb.backness)) / 2
	if pa.diphthong != pb.diphthong {
		dist += 0.25
	}
	if dist >= 1 {
		return 0
	}
	return 1 - dist
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
