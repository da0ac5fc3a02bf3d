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

package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name string
		in   string
		exp  string
	}{
		{"plain word", "cat", "CAT"},
		{"surrounding space", "  cat  ", "CAT"},
		{"inner whitespace collapses", "ice \t cream", "ICE CREAM"},
		{"smart apostrophe", "don’t", "DON'T"},
		{"em dash splits", "mother—in—law", "MOTHER IN LAW"},
		{"ascii dash splits", "twenty-one", "TWENTY ONE"},
		{"repeated dashes", "well--known", "WELL KNOWN"},
		{"accents stripped", "café", "CAFE"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.exp, NormalizeQuery(tt.in))
		})
	}
}

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		name string
		in   string
		exp  string
	}{
		{"plain word", "Cat", "CAT"},
		{"apostrophe kept", "o’clock", "O'CLOCK"},
		{"punctuation dropped", "cat!?", "CAT"},
		{"inner space removed", "ice cream", "ICECREAM"},
		{"digits kept", "route66", "ROUTE66"},
		{"empty", "", ""},
		{"punctuation only", "!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.exp, NormalizeWord(tt.in))
		})
	}
}
