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

// Package patterns provides the optional example-line store - a
// read-only sqlite database mapping a word or phrase key to one
// published lyric line with its attribution. The store is a
// display-time collaborator only: its availability must never
// influence a rhyme search result.
package patterns

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"urhymes/dict"
)

type Conf struct {
	DBPath string `json:"dbPath"`
}

// Line is one stored example usage of a word or phrase.
type Line struct {
	Key       string `json:"key"`
	Lyric     string `json:"lyric"`
	Artist    string `json:"artist"`
	SongTitle string `json:"songTitle"`
}

// Store wraps the sqlite connection. A nil *Store is a valid
// "not configured" value - LineFor then always answers not found.
type Store struct {
	db *sql.DB
}

// LineFor performs the single-key, single-row lookup contract.
// The patterns table may grow additional context columns over
// time; only the named columns here are part of the contract.
func (s *Store) LineFor(key string) (Line, bool, error) {
	if s == nil {
		return Line{}, false, nil
	}
	normKey := dict.NormalizeQuery(key)
	var ans Line
	row := s.db.QueryRow(
		"SELECT key, lyric, artist, song_title FROM patterns WHERE key = ? LIMIT 1",
		normKey,
	)
	err := row.Scan(&ans.Key, &ans.Lyric, &ans.Artist, &ans.SongTitle)
	if errors.Is(err, sql.ErrNoRows) {
		return Line{}, false, nil
	}
	if err != nil {
		return Line{}, false, fmt.Errorf("failed to fetch pattern line: %w", err)
	}
	return ans, true, nil
}

func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// Open connects to the configured patterns database. With no path
// configured it returns a nil store, which is fully functional in
// its degraded form.
func Open(conf *Conf) (*Store, error) {
	if conf == nil || conf.DBPath == "" {
		log.Info().Msg("patterns store not configured - example lines will be unavailable")
		return nil, nil
	}
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", conf.DBPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open patterns database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to open patterns database: %w", err)
	}
	log.Info().Str("path", conf.DBPath).Msg("opened patterns store")
	return &Store{db: db}, nil
}
