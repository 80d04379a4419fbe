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

package media

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Cache keeps downloaded media blobs in a sqlite file, so a http(s) path
// opens instantly the second time.
type Cache struct {
	db   *sql.DB
	lock sync.Mutex
	rows map[string]int64
}

func NewCache() (*Cache, error) {
	cache := &Cache{}

	var err error
	cache.db, err = sql.Open("sqlite3", "file:cache.sqlite?&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("sql.Open() from file failed: %w", err)
	}

	//init table
	_, err = cache.db.Exec("CREATE TABLE IF NOT EXISTS media (url TEXT, file BLOB);")
	if err != nil {
		return nil, fmt.Errorf("'CREATE TABLE' failed: %w", err)
	}

	//load all rows
	rows, err := cache.db.Query("SELECT url, rowid FROM media")
	if err != nil {
		return nil, fmt.Errorf("'SELECT url, rowid FROM media' failed: %w", err)
	}
	cache.rows = make(map[string]int64)
	for rows.Next() {
		var url string
		var rowid int64
		err = rows.Scan(&url, &rowid)
		if err == nil && rowid > 0 {
			cache.rows[url] = rowid
		}
	}

	return cache, nil
}

func (cache *Cache) Destroy() {
	if cache.db == nil {
		return
	}
	cache.db.Exec("PRAGMA wal_checkpoint(full);")
	err := cache.db.Close()
	if err != nil {
		fmt.Printf("db.Close() failed: %v\n", err)
	}
	cache.db = nil
}

func (cache *Cache) FindRow(url string) int64 {
	cache.lock.Lock()
	defer cache.lock.Unlock()

	rowid, found := cache.rows[url]
	if found {
		return rowid
	}
	return -1
}

func (cache *Cache) Get(url string) ([]byte, error) {
	rowid := cache.FindRow(url)
	if rowid < 0 {
		var err error
		rowid, err = cache.download(url)
		if err != nil {
			return nil, err
		}
	}

	//get from database
	row := cache.db.QueryRow("SELECT file FROM media WHERE rowid=?", rowid)

	var blob []byte
	err := row.Scan(&blob)
	if err != nil {
		return nil, err
	}

	return blob, nil
}

var g_download_lock sync.Mutex
var g_flagTimeout = flag.Duration("media-timeout", 30*time.Minute, "HTTP timeout")

func (cache *Cache) download(url string) (int64, error) {
	//only once at the time
	g_download_lock.Lock()
	defer g_download_lock.Unlock()

	rowid := cache.FindRow(url)
	if rowid >= 0 {
		return rowid, nil //already downloaded
	}

	// prepare client
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return -1, err
	}
	req.Header.Set("User-Agent", "Mediff/0.1")

	// connect
	client := http.Client{
		Timeout: *g_flagTimeout,
	}
	resp, err := client.Do(req)
	if err != nil {
		return -1, err
	}
	defer resp.Body.Close()

	// download
	var out []byte
	temp := make([]byte, 1024*64)
	for {
		n, err := resp.Body.Read(temp)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return -1, err
			}
			break
		}
		out = append(out, temp[:n]...)
	}

	//save
	res, err := cache.db.Exec("INSERT INTO media(url, file) VALUES(?, ?);", url, out)
	if err != nil {
		return -1, err
	}

	rowid, err = res.LastInsertId()
	if err != nil {
		fmt.Printf("LastInsertId() failed: %v\n", err)
	}

	cache.lock.Lock()
	cache.rows[url] = rowid
	cache.lock.Unlock()

	return rowid, nil
}
