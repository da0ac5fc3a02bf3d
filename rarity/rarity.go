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

// Package rarity maps words to a normalized rarity score based on
// a Zipf word frequency list. The table is loaded once at startup
// and shared read-only.
package rarity

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	// zipfCeiling caps the Zipf scale (freq. per billion words,
	// log10) - values above it all map to rarity 0.
	zipfCeiling = 8.0

	// DefaultUnknownScore is applied to words absent from the
	// frequency list. Deliberately moderate so unknown words do
	// not dominate results purely by absence.
	DefaultUnknownScore = 0.5
)

type Conf struct {
	FreqFilePath string `json:"freqFilePath"`

	// UnknownScore is the rarity assigned to words missing from
	// the frequency list; zero means the built-in default.
	UnknownScore float64 `json:"unknownScore"`
}

// Table is an immutable word -> rarity mapping. Scores lie in
// [0, 1], higher meaning rarer.
type Table struct {
	scores       map[string]float64
	unknownScore float64
}

// ScoreOf returns the rarity of a word (its normalized uppercase
// form is expected). Unknown words get the configured default.
func (t *Table) ScoreOf(word string) float64 {
	if score, ok := t.scores[word]; ok {
		return score
	}
	return t.unknownScore
}

// Size returns the number of words with a known frequency.
func (t *Table) Size() int {
	return len(t.scores)
}

// zipfToScore converts a Zipf frequency into a rarity score.
func zipfToScore(zipf float64) float64 {
	if zipf <= 0 {
		return 1
	}
	if zipf >= zipfCeiling {
		return 0
	}
	return 1 - zipf/zipfCeiling
}

// Load reads a tab-separated `WORD<TAB>zipf` frequency list.
// Malformed lines are skipped with a debug log entry.
func Load(reader io.Reader, unknownScore float64) (*Table, error) {
	if unknownScore <= 0 {
		unknownScore = DefaultUnknownScore
	}
	scores := make(map[string]float64)
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word, rawFreq, ok := strings.Cut(line, "\t")
		if !ok {
			log.Debug().Str("line", line).Msg("skipping malformed frequency line")
			continue
		}
		zipf, err := strconv.ParseFloat(strings.TrimSpace(rawFreq), 64)
		if err != nil {
			log.Debug().Str("line", line).Msg("skipping malformed frequency line")
			continue
		}
		scores[strings.ToUpper(strings.TrimSpace(word))] = zipfToScore(zipf)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read frequency list: %w", err)
	}
	return &Table{scores: scores, unknownScore: unknownScore}, nil
}

// LoadFile is a convenience wrapper of Load for a file path. An
// unset path yields an empty table where every word scores the
// default - the engine then effectively ranks by quality alone.
func LoadFile(conf Conf) (*Table, error) {
	if conf.FreqFilePath == "" {
		log.Warn().Msg("no word frequency list configured, rarity scoring will use the default for all words")
		return &Table{
			scores:       make(map[string]float64),
			unknownScore: DefaultUnknownScore,
		}, nil
	}
	f, err := os.Open(conf.FreqFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open frequency list: %w", err)
	}
	defer f.Close()
	table, err := Load(f, conf.UnknownScore)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("path", conf.FreqFilePath).
		Int("numWords", table.Size()).
		Msg("loaded word frequency list")
	return table, nil
}
