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

package patterns

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patterns.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec(
		"CREATE TABLE patterns (key TEXT PRIMARY KEY, lyric TEXT, artist TEXT, song_title TEXT)")
	require.NoError(t, err)
	_, err = db.Exec(
		"INSERT INTO patterns (key, lyric, artist, song_title) VALUES (?, ?, ?, ?)",
		"TROUBLE", "Here comes trouble on the double", "Testy McTest", "Bubble")
	require.NoError(t, err)
	return path
}

func TestLineFor(t *testing.T) {
	store, err := Open(&Conf{DBPath: createTestDB(t)})
	require.NoError(t, err)
	defer store.Close()

	line, found, err := store.LineFor("trouble")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "TROUBLE", line.Key)
	assert.Equal(t, "Here comes trouble on the double", line.Lyric)
	assert.Equal(t, "Testy McTest", line.Artist)
	assert.Equal(t, "Bubble", line.SongTitle)
}

func TestLineForNormalizesKey(t *testing.T) {
	store, err := Open(&Conf{DBPath: createTestDB(t)})
	require.NoError(t, err)
	defer store.Close()

	_, found, err := store.LineFor("  Trouble ")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestLineForMissingKey(t *testing.T) {
	store, err := Open(&Conf{DBPath: createTestDB(t)})
	require.NoError(t, err)
	defer store.Close()

	line, found, err := store.LineFor("zzyzxqq")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, Line{}, line)
}

func TestNilStoreDegradesGracefully(t *testing.T) {
	var store *Store
	line, found, err := store.LineFor("trouble")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, Line{}, line)
	assert.NoError(t, store.Close())
}

func TestOpenUnconfigured(t *testing.T) {
	store, err := Open(nil)
	require.NoError(t, err)
	assert.Nil(t, store)

	store, err = Open(&Conf{})
	require.NoError(t, err)
	assert.Nil(t, store)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(&Conf{DBPath: filepath.Join(t.TempDir(), "nope.db")})
	assert.Error(t, err)
}
