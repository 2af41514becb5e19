/*
Package nbstore persists notebooks to SQLite files.

Only the content of lines is stored. Outcomes depend on the engine and on
configuration and are re-computed after loading.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024 Norbert Pillmayer <norbert@pillmayer.com>

*/
package nbstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/npillmayer/onyx/notebook"
	"github.com/npillmayer/schuko/tracing"

	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// tracer traces with key 'onyx.notebook'.
func tracer() tracing.Trace {
	return tracing.Select("onyx.notebook")
}

const driverName = "sqlite"

const schema = `
	CREATE TABLE IF NOT EXISTS meta (
		key   TEXT PRIMARY KEY,
		value TEXT
	);
	CREATE TABLE IF NOT EXISTS lines (
		idx     INTEGER PRIMARY KEY,
		content TEXT NOT NULL
	);
`

// DB is an open notebook file.
type DB struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the notebook file at path.
func Open(ctx context.Context, path string) (*DB, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("opening notebook %s: %w", path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema in %s: %w", path, err)
	}
	return &DB{db: db, path: path}, nil
}

// Close closes the notebook file.
func (d *DB) Close() error {
	return d.db.Close()
}

// Save replaces the stored lines with the lines of nb.
func (d *DB) Save(ctx context.Context, nb *notebook.Store) error {
	lines := nb.Lines()
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.ExecContext(ctx, `DELETE FROM lines`); err != nil {
		return fmt.Errorf("clearing %s: %w", d.path, err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO lines (idx, content) VALUES (?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for i, l := range lines {
		if _, err := stmt.ExecContext(ctx, i, l.Content); err != nil {
			return fmt.Errorf("saving line %d to %s: %w", i, d.path, err)
		}
	}
	_, err = tx.ExecContext(ctx, `INSERT OR REPLACE INTO meta (key, value) VALUES ('saved', ?)`,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("saving %s: %w", d.path, err)
	}
	tracer().Infof("saved %d lines to %s", len(lines), d.path)
	return nil
}

// Load reads the stored lines, in order, into a new notebook. The lines
// have no outcome yet.
func (d *DB) Load(ctx context.Context) (*notebook.Store, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT content FROM lines ORDER BY idx`)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", d.path, err)
	}
	defer rows.Close()
	nb := notebook.New(0)
	for rows.Next() {
		var content string
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("loading %s: %w", d.path, err)
		}
		nb.Append(content)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading %s: %w", d.path, err)
	}
	tracer().Infof("loaded %d lines from %s", nb.Len(), d.path)
	return nb, nil
}

// Save writes nb to the notebook file at path.
func Save(ctx context.Context, path string, nb *notebook.Store) error {
	d, err := Open(ctx, path)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.Save(ctx, nb)
}

// Load reads a notebook from the file at path.
func Load(ctx context.Context, path string) (*notebook.Store, error) {
	d, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	return d.Load(ctx)
}
