/*
Copyright 2025 Milan Suk

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this db except in compliance with the License.
You may obtain a copy of the License at

http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Recents remembers which pairs of files were compared. Viewport transforms
// are deliberately not saved, only the paths.
type Recents struct {
	db *sql.DB
}

func NewRecents(path string) (*Recents, error) {
	rc := &Recents{}

	var err error
	rc.db, err = sql.Open("sqlite3", "file:"+path+"?&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("sql.Open() from file failed: %w", err)
	}

	_, err = rc.db.Exec("CREATE TABLE IF NOT EXISTS recents (left_path TEXT, right_path TEXT, open_time INTEGER);")
	if err != nil {
		return nil, fmt.Errorf("'CREATE TABLE' failed: %w", err)
	}

	return rc, nil
}

func (rc *Recents) Destroy() {
	if rc.db == nil {
		return
	}
	rc.db.Exec("PRAGMA wal_checkpoint(full);")
	err := rc.db.Close()
	if err != nil {
		fmt.Printf("db.Close() failed: %v\n", err)
	}
	rc.db = nil
}

// Add stores a pair. An existing row with the same paths is refreshed instead
// of duplicated.
func (rc *Recents) Add(left, right string) error {
	if left == "" && right == "" {
		return nil
	}

	_, err := rc.db.Exec("DELETE FROM recents WHERE left_path=? AND right_path=?;", left, right)
	if err != nil {
		return err
	}

	_, err = rc.db.Exec("INSERT INTO recents(left_path, right_path, open_time) VALUES(?, ?, ?);", left, right, time.Now().UnixNano())
	if err != nil {
		return err
	}

	//keep it short
	_, err = rc.db.Exec("DELETE FROM recents WHERE rowid NOT IN (SELECT rowid FROM recents ORDER BY open_time DESC LIMIT 20);")
	return err
}

// Last returns the most recently compared pair, or empty strings.
func (rc *Recents) Last() (string, string) {
	row := rc.db.QueryRow("SELECT left_path, right_path FROM recents ORDER BY open_time DESC LIMIT 1;")

	var left, right string
	err := row.Scan(&left, &right)
	if err != nil {
		return "", ""
	}
	return left, right
}
