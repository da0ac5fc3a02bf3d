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
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var smartQuotes = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"‚", "'",
	"‛", "'",
	"“", "\"",
	"”", "\"",
	"„", "\"",
)

var dashes = strings.NewReplacer(
	"–", "-",
	"—", "-",
	"―", "-",
	"−", "-",
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	dashRe       = regexp.MustCompile(`-+`)
	wordCleanRe  = regexp.MustCompile(`[^A-Z0-9' ]+`)
)

func stripAccents(text string) string {
	decomposed := norm.NFKD.String(text)
	var sb strings.Builder
	for _, ch := range decomposed {
		if unicode.Is(unicode.Mn, ch) {
			continue
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

// NormalizeQuery prepares raw user input for dictionary work:
// smart quotes and typographic dashes become their ASCII forms,
// accents are stripped, dashes turn into token separators and
// whitespace is collapsed. The result is uppercase, matching the
// dictionary's token form.
func NormalizeQuery(text string) string {
	if text == "" {
		return ""
	}
	fixed := smartQuotes.Replace(text)
	fixed = dashes.Replace(fixed)
	fixed = stripAccents(fixed)
	fixed = strings.ToUpper(fixed)
	fixed = dashRe.ReplaceAllString(fixed, " ")
	fixed = whitespaceRe.ReplaceAllString(fixed, " ")
	return strings.TrimSpace(fixed)
}

// NormalizeWord produces a single dictionary lookup token - i.e.
// the NormalizeQuery form with punctuation and inner spaces removed.
func NormalizeWord(text string) string {
	normalized := NormalizeQuery(text)
	if normalized == "" {
		return ""
	}
	cleaned := wordCleanRe.ReplaceAllString(normalized, "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	return strings.TrimSpace(cleaned)
}
