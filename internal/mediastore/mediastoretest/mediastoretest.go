// Package mediastoretest builds throwaway media index files for tests.
package mediastoretest

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"photosync/internal/mediastore"
)

const schema = `
CREATE TABLE images (
    _id INTEGER PRIMARY KEY,
    _data TEXT NOT NULL,
    title TEXT,
    _size INTEGER,
    mime_type TEXT,
    description TEXT,
    date_added INTEGER,
    date_modified INTEGER,
    datetaken INTEGER,
    orientation INTEGER,
    width INTEGER,
    height INTEGER
);
CREATE TABLE video (
    _id INTEGER PRIMARY KEY,
    _data TEXT NOT NULL,
    title TEXT,
    _size INTEGER,
    mime_type TEXT,
    description TEXT,
    date_added INTEGER,
    date_modified INTEGER,
    datetaken INTEGER,
    orientation INTEGER,
    width INTEGER,
    height INTEGER,
    category TEXT,
    language TEXT,
    tags TEXT,
    duration INTEGER,
    artist TEXT,
    album TEXT,
    resolution TEXT
);`

// Index is a writable media index file.
type Index struct {
	Path string
	DB   *sql.DB
}

// New creates an empty index under t.TempDir().
func New(t testing.TB) *Index {
	t.Helper()
	path := filepath.Join(t.TempDir(), "external.db")
	db, err := sql.Open("sqlite", "file:"+filepath.ToSlash(path))
	if err != nil {
		t.Fatalf("open media index: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create media index schema: %v", err)
	}
	return &Index{Path: path, DB: db}
}

// Put inserts or replaces a row of kind. Only the id, path and
// date_modified (seconds) columns are set; the rest stay NULL unless
// given through extra as column/value pairs.
func (x *Index) Put(t testing.TB, kind mediastore.Kind, id int64, path string, modifiedSec int64, extra ...any) {
	t.Helper()
	columns := "_id, _data, date_modified, date_added"
	marks := "?, ?, ?, ?"
	args := []any{id, path, modifiedSec, modifiedSec}
	for i := 0; i+1 < len(extra); i += 2 {
		columns += ", " + extra[i].(string)
		marks += ", ?"
		args = append(args, extra[i+1])
	}
	_, err := x.DB.Exec("INSERT OR REPLACE INTO "+kind.Table()+" ("+columns+") VALUES ("+marks+")", args...)
	if err != nil {
		t.Fatalf("put %s %d: %v", kind, id, err)
	}
}

// Remove deletes a row of kind.
func (x *Index) Remove(t testing.TB, kind mediastore.Kind, id int64) {
	t.Helper()
	if _, err := x.DB.Exec("DELETE FROM "+kind.Table()+" WHERE _id = ?", id); err != nil {
		t.Fatalf("remove %s %d: %v", kind, id, err)
	}
}

// Drop removes the table backing kind so every query against it fails.
func (x *Index) Drop(t testing.TB, kind mediastore.Kind) {
	t.Helper()
	if _, err := x.DB.Exec("DROP TABLE " + kind.Table()); err != nil {
		t.Fatalf("drop %s: %v", kind, err)
	}
}
