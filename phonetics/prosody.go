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

import "strings"

// StressPattern renders a binary stress string over the vowels of
// a pronunciation, e.g. "1-0" for a trochee. Secondary stress is
// normalized to 1 so the pattern stays binary.
func StressPattern(phonemes []Phoneme) string {
	var bits []string
	for _, p := range phonemes {
		if !p.IsVowel() {
			continue
		}
		if p.Stress == Primary || p.Stress == Secondary {
			bits = append(bits, "1")

		} else {
			bits = append(bits, "0")
		}
	}
	return strings.Join(bits, "-")
}

var metricalFeet = map[string]string{
	"1-0":   "Trochee",
	"0-1":   "Iamb",
	"1-0-0": "Dactyl",
	"0-0-1": "Anapest",
	"1-1":   "Spondee",
	"0-1-0": "Amphibrach",
	"1-0-1": "Cretic",
	"0-1-1": "Bacchius",
	"1-1-0": "Antibacchius",
}

// MetricalName maps a binary stress pattern to its classical foot
// name, or a placeholder when the pattern has no name.
func MetricalName(pattern string) string {
	if name, ok := metricalFeet[pattern]; ok {
		return name
	}
	return "—"
}
