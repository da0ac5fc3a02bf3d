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

// Package rhymes implements the phonetic rhyme engine: rhyme key
// derivation, the multi-key candidate index, the rhyme type
// classifier and the top-level query engine. All shared structures
// are built once at startup and immutable afterwards, so any number
// of searches may run concurrently without locking.
package rhymes

import (
	"strings"

	"urhymes/merror"
)

// Type classifies the phonetic relationship between a query and
// a candidate word.
type Type string

const (
	TypePerfect    Type = "perfect"
	TypeSlant      Type = "slant"
	TypeAssonance  Type = "assonance"
	TypeConsonance Type = "consonance"
)

func (t Type) String() string {
	return string(t)
}

// Strength provides a total order of rhyme types used as a score
// tie-break - a higher value means a stronger relationship.
func (t Type) Strength() int {
	switch t {
	case TypePerfect:
		return 4
	case TypeSlant:
		return 3
	case TypeAssonance:
		return 2
	case TypeConsonance:
		return 1
	}
	return 0
}

func (t Type) Validate() error {
	switch t {
	case TypePerfect, TypeSlant, TypeAssonance, TypeConsonance:
		return nil
	}
	return merror.InputError{Msg: "unknown rhyme type: " + string(t)}
}

// ParseTypes decodes a comma-separated rhyme type list as accepted
// by the HTTP API.
func ParseTypes(raw string) ([]Type, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	items := strings.Split(raw, ",")
	ans := make([]Type, 0, len(items))
	for _, item := range items {
		t := Type(strings.TrimSpace(strings.ToLower(item)))
		if err := t.Validate(); err != nil {
			return nil, err
		}
		ans = append(ans, t)
	}
	return ans, nil
}

// DefaultTypes returns the types enabled when a caller does not
// specify any. Consonance produces the weakest, noisiest matches
// and must be requested explicitly.
func DefaultTypes() []Type {
	return []Type{TypePerfect, TypeSlant, TypeAssonance}
}
