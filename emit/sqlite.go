package emit

import (
	"github.com/jmoiron/sqlx"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"telcodegen/lookup"
)

const schema = `
CREATE TABLE IF NOT EXISTS lookup_tables (
	name     TEXT PRIMARY KEY,
	comments TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS lookup_entries (
	table_name TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	PRIMARY KEY (table_name, key)
);`

// SQLiteSink stores tables in a SQLite database. Writing a table replaces
// its previous contents; a duplicate key keeps the last value.
type SQLiteSink struct {
	db *sqlx.DB
}

// OpenSQLite opens (or creates) the database at path.
func OpenSQLite(path string) (*SQLiteSink, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrapf(err, "opening %s", path)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "creating schema")
	}
	return &SQLiteSink{db: db}, nil
}

type entryRow struct {
	Table string `db:"table_name"`
	Key   string `db:"key"`
	Value string `db:"value"`
}

// WriteTable stores t in one transaction.
func (s *SQLiteSink) WriteTable(t lookup.Table) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return eris.Wrap(err, "beginning transaction")
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM lookup_entries WHERE table_name = ?`, t.Name); err != nil {
		return eris.Wrapf(err, "clearing %s", t.Name)
	}
	if _, err := tx.Exec(`INSERT OR REPLACE INTO lookup_tables (name, comments) VALUES (?, ?)`, t.Name, t.Comments); err != nil {
		return eris.Wrapf(err, "registering %s", t.Name)
	}

	stmt, err := tx.PrepareNamed(`INSERT OR REPLACE INTO lookup_entries (table_name, key, value) VALUES (:table_name, :key, :value)`)
	if err != nil {
		return eris.Wrap(err, "preparing insert")
	}
	defer stmt.Close()

	for _, e := range t.Entries {
		if _, err := stmt.Exec(entryRow{Table: t.Name, Key: e.Key, Value: e.Value}); err != nil {
			return eris.Wrapf(err, "inserting %s[%s]", t.Name, e.Key)
		}
	}
	return eris.Wrapf(tx.Commit(), "committing %s", t.Name)
}

// Lookup returns the value stored for key in table.
func (s *SQLiteSink) Lookup(table, key string) (string, error) {
	var value string
	err := s.db.Get(&value, `SELECT value FROM lookup_entries WHERE table_name = ? AND key = ?`, table, key)
	return value, eris.Wrapf(err, "looking up %s[%s]", table, key)
}

// Entries returns the entries of table ordered by key.
func (s *SQLiteSink) Entries(table string) ([]lookup.Entry, error) {
	var rows []entryRow
	if err := s.db.Select(&rows, `SELECT table_name, key, value FROM lookup_entries WHERE table_name = ? ORDER BY key`, table); err != nil {
		return nil, eris.Wrapf(err, "listing %s", table)
	}
	entries := make([]lookup.Entry, len(rows))
	for i, r := range rows {
		entries[i] = lookup.Entry{Key: r.Key, Value: r.Value}
	}
	return entries, nil
}

// Close closes the database.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
