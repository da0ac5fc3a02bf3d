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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"urhymes/phonetics"
)

const cmuCommentPrefix = ";;;"

// parseCMULine decodes one dictionary line of the form
// `WORD(2)  PH PH PH`. It returns ok=false for blank and comment
// lines.
func parseCMULine(line string) (word string, phonemes []phonetics.Phoneme, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, cmuCommentPrefix) {
		return "", nil, false, nil
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", nil, false, fmt.Errorf("missing pronunciation in line %q", line)
	}
	head := fields[0]
	if i := strings.IndexByte(head, '('); i > 0 {
		head = head[:i]
	}
	word = NormalizeWord(head)
	if word == "" {
		return "", nil, false, fmt.Errorf("unusable headword in line %q", line)
	}
	phonemes, err = phonetics.ParsePronunciation(fields[1:])
	if err != nil {
		return "", nil, false, fmt.Errorf("failed to parse pronunciation of %s: %w", word, err)
	}
	return word, phonemes, true, nil
}

// LoadCMU reads a whole CMU-format dictionary into a Store.
// Malformed lines are counted and logged but do not abort the
// load - real CMUdict distributions contain a handful of them.
func LoadCMU(reader io.Reader) (*Store, error) {
	entries := make(map[string][]Entry)
	var size, numFailed int
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		word, phonemes, ok, err := parseCMULine(scanner.Text())
		if err != nil {
			numFailed++
			log.Debug().Err(err).Msg("skipping malformed dictionary line")
			continue
		}
		if !ok {
			continue
		}
		entries[word] = append(entries[word], Entry{
			Word:     word,
			Phonemes: phonemes,
			Variant:  len(entries[word]),
		})
		size++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pronunciation dictionary: %w", err)
	}
	if numFailed > 0 {
		log.Warn().
			Int("numFailed", numFailed).
			Msg("some dictionary lines could not be parsed")
	}
	return &Store{entries: entries, size: size}, nil
}

// LoadCMUFile is a convenience wrapper of LoadCMU for a file path.
func LoadCMUFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pronunciation dictionary: %w", err)
	}
	defer f.Close()
	store, err := LoadCMU(f)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("path", path).
		Int("numWords", store.NumWords()).
		Int("numEntries", store.NumEntries()).
		Msg("loaded pronunciation dictionary")
	return store, nil
}
