package indexdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// MapRecord is one indexed map file.
type MapRecord struct {
	Path      string
	Digest    string
	Builder   string
	Tiles     int
	StartX    int
	StartY    int
	IndexedAt string
}

// Index is a catalogue of known map files backed by a local SQLite database.
type Index struct {
	db *sql.DB
}

func OpenSQLite(path string) (*Index, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Index{db: db}, nil
}

func initPragmas(db *sql.DB) error {
	// Single local writer; WAL keeps concurrent readers out of its way.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	const stmt = `CREATE TABLE IF NOT EXISTS maps (
		path TEXT PRIMARY KEY,
		sha256 TEXT NOT NULL,
		builder TEXT NOT NULL,
		tiles INTEGER NOT NULL,
		start_x INTEGER NOT NULL,
		start_y INTEGER NOT NULL,
		indexed_at TEXT NOT NULL
	);`
	_, err := db.Exec(stmt)
	return err
}

// RecordMap upserts rec keyed by its path. An empty IndexedAt is stamped
// with the current time.
func (x *Index) RecordMap(rec MapRecord) error {
	if rec.IndexedAt == "" {
		rec.IndexedAt = time.Now().UTC().Format(time.RFC3339Nano)
	}
	_, err := x.db.Exec(`INSERT INTO maps(path,sha256,builder,tiles,start_x,start_y,indexed_at)
		VALUES(?,?,?,?,?,?,?)
		ON CONFLICT(path) DO UPDATE SET
			sha256=excluded.sha256,
			builder=excluded.builder,
			tiles=excluded.tiles,
			start_x=excluded.start_x,
			start_y=excluded.start_y,
			indexed_at=excluded.indexed_at`,
		rec.Path, rec.Digest, rec.Builder, rec.Tiles, rec.StartX, rec.StartY, rec.IndexedAt)
	return err
}

// Maps returns every indexed record ordered by path.
func (x *Index) Maps() ([]MapRecord, error) {
	rows, err := x.db.Query(`SELECT path,sha256,builder,tiles,start_x,start_y,indexed_at FROM maps ORDER BY path`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []MapRecord
	for rows.Next() {
		var r MapRecord
		if err := rows.Scan(&r.Path, &r.Digest, &r.Builder, &r.Tiles, &r.StartX, &r.StartY, &r.IndexedAt); err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, rows.Err()
}

func (x *Index) Close() error {
	return x.db.Close()
}
