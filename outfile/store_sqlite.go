package outfile

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/joshuapare/histkit/hist"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS dirs (
	id        INTEGER PRIMARY KEY,
	parent_id INTEGER REFERENCES dirs(id),
	name      TEXT NOT NULL,
	pos       INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS objects (
	dir_id  INTEGER NOT NULL REFERENCES dirs(id),
	name    TEXT NOT NULL,
	title   TEXT NOT NULL,
	kind    TEXT NOT NULL,
	entries INTEGER NOT NULL,
	cycle   INTEGER NOT NULL,
	pos     INTEGER NOT NULL,
	payload BLOB NOT NULL,
	PRIMARY KEY (dir_id, name)
);
`

type sqliteStore struct {
	db *sql.DB
}

func openSQLiteDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// PRAGMAs are per connection; keep exactly one.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func createSQLite(path string, fullFsync bool) (*sqliteStore, error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	db, err := openSQLiteDB(path)
	if err != nil {
		return nil, err
	}
	pragmas := []string{"PRAGMA synchronous = FULL"}
	if fullFsync {
		pragmas = append(pragmas, "PRAGMA fullfsync = ON")
	}
	for _, p := range append(pragmas, sqliteSchema) {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("init schema: %w", err)
		}
	}
	return &sqliteStore{db: db}, nil
}

// save rewrites both tables inside one transaction. Directory ids are handed
// out in pre-order, so every parent id is smaller than its children's.
func (s *sqliteStore) save(root *Dir) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec("DELETE FROM objects"); err != nil {
		return err
	}
	if _, err = tx.Exec("DELETE FROM dirs"); err != nil {
		return err
	}
	if err = insertDir(tx, root, sql.NullInt64{}, 0); err != nil {
		return err
	}
	return tx.Commit()
}

func insertDir(tx *sql.Tx, d *Dir, parent sql.NullInt64, pos int) error {
	res, err := tx.Exec("INSERT INTO dirs (parent_id, name, pos) VALUES (?, ?, ?)", parent, d.name, pos)
	if err != nil {
		return fmt.Errorf("insert dir %q: %w", d.displayPath(), err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	for i, rec := range d.records {
		_, err := tx.Exec(
			"INSERT INTO objects (dir_id, name, title, kind, entries, cycle, pos, payload) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			id, rec.Name, rec.Title, rec.Kind.String(), rec.Entries, rec.Cycle, i, rec.Payload,
		)
		if err != nil {
			return fmt.Errorf("insert object %q in %q: %w", rec.Name, d.displayPath(), err)
		}
	}
	self := sql.NullInt64{Int64: id, Valid: true}
	for i, sub := range d.subdirs {
		if err := insertDir(tx, sub, self, i); err != nil {
			return err
		}
	}
	return nil
}

func (s *sqliteStore) close() error { return s.db.Close() }

func loadSQLite(path string, root *Dir) (*sqliteStore, error) {
	db, err := openSQLiteDB(path)
	if err != nil {
		return nil, err
	}
	s := &sqliteStore{db: db}
	if err := s.load(root); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *sqliteStore) load(root *Dir) error {
	rows, err := s.db.Query("SELECT id, parent_id, name FROM dirs ORDER BY id")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	defer rows.Close()

	dirs := make(map[int64]*Dir)
	for rows.Next() {
		var (
			id     int64
			parent sql.NullInt64
			name   string
		)
		if err := rows.Scan(&id, &parent, &name); err != nil {
			return err
		}
		if !parent.Valid {
			dirs[id] = root
			continue
		}
		p, ok := dirs[parent.Int64]
		if !ok {
			return fmt.Errorf("%w: dir %q has unknown parent %d", ErrBadFormat, name, parent.Int64)
		}
		if err := ValidateName(name); err != nil {
			return fmt.Errorf("%w: %v", ErrBadFormat, err)
		}
		dirs[id] = p.addSubdir(name)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	objRows, err := s.db.Query("SELECT dir_id, name, title, kind, entries, cycle, payload FROM objects ORDER BY dir_id, pos")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadFormat, err)
	}
	defer objRows.Close()

	for objRows.Next() {
		var (
			dirID int64
			rec   Record
			kind  string
		)
		if err := objRows.Scan(&dirID, &rec.Name, &rec.Title, &kind, &rec.Entries, &rec.Cycle, &rec.Payload); err != nil {
			return err
		}
		d, ok := dirs[dirID]
		if !ok {
			return fmt.Errorf("%w: object %q in unknown dir %d", ErrBadFormat, rec.Name, dirID)
		}
		k, ok := hist.ParseKind(kind)
		if !ok {
			return fmt.Errorf("%w: object %q has kind %q", ErrBadFormat, rec.Name, kind)
		}
		rec.Kind = k
		d.addRecord(rec)
	}
	return objRows.Err()
}
