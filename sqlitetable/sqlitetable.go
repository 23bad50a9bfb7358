// SPDX-License-Identifier: MIT

// Package sqlitetable exposes one SQLite table as a table.Table. Class
// assignment runs as one SQL transaction per call to Begin; the Table holds
// at most one open transaction.
package sqlitetable

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3" // SQLite driver registration

	"github.com/katalvlaran/classbreak/rule"
	"github.com/katalvlaran/classbreak/table"
)

// ErrNoTable indicates the named table does not exist in the database.
var ErrNoTable = errors.New("sqlitetable: table not found")

// Table is a table.Table over a SQLite table. Features are ordered by rowid.
type Table struct {
	db   *sql.DB
	name string
	own  bool

	mu   sync.Mutex
	open bool
}

var _ table.Table = (*Table)(nil)

// Open opens the database at dsn and binds the named table.
func Open(dsn, name string) (*Table, error) {
	if !strings.Contains(dsn, "_busy_timeout") {
		if strings.Contains(dsn, "?") {
			dsn += "&_busy_timeout=5000"
		} else {
			dsn += "?_busy_timeout=5000"
		}
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("error connecting to SQLite: %w", err)
	}
	t, err := New(db, name)
	if err != nil {
		db.Close()
		return nil, err
	}
	t.own = true
	return t, nil
}

// New binds an existing handle; Close will not close db.
func New(db *sql.DB, name string) (*Table, error) {
	var found string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, name).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%q: %w", name, ErrNoTable)
	}
	if err != nil {
		return nil, fmt.Errorf("error looking up table %q: %w", name, err)
	}
	return &Table{db: db, name: name}, nil
}

// Close releases the database when Open created it.
func (t *Table) Close() error {
	if t.own && t.db != nil {
		return t.db.Close()
	}
	return nil
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
}

// Fields implements table.Table from PRAGMA table_info.
func (t *Table) Fields() ([]table.Field, error) {
	return fields(t.db, t.name)
}

func fields(q querier, name string) ([]table.Field, error) {
	rows, err := q.Query(fmt.Sprintf("PRAGMA table_info(%s)", quote(name)))
	if err != nil {
		return nil, fmt.Errorf("error reading schema: %w", err)
	}
	defer rows.Close()

	var out []table.Field
	for rows.Next() {
		var (
			cid     int
			col     string
			typ     string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &col, &typ, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("error scanning schema: %w", err)
		}
		out = append(out, table.Field{Name: col, Type: affinity(typ)})
	}
	return out, rows.Err()
}

// AddField implements table.Table with ALTER TABLE ADD COLUMN.
func (t *Table) AddField(f table.Field) error {
	ok, err := table.HasField(t, f.Name)
	if err != nil {
		return err
	}
	if ok {
		return fmt.Errorf("%q: %w", f.Name, table.ErrFieldExists)
	}
	typ := "REAL"
	if f.Type == table.Integer {
		typ = "INTEGER"
	}
	if _, err := t.db.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", quote(t.name), quote(f.Name), typ)); err != nil {
		return fmt.Errorf("error adding field %q: %w", f.Name, err)
	}
	return nil
}

// Values implements table.Table. Only the field is selected; NULLs are skipped.
func (t *Table) Values(field string) ([]float64, error) {
	if err := t.require(field); err != nil {
		return nil, err
	}
	rows, err := t.db.Query(fmt.Sprintf("SELECT %s FROM %s WHERE %s IS NOT NULL ORDER BY rowid",
		quote(field), quote(t.name), quote(field)))
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", field, err)
	}
	defer rows.Close()

	var out []float64
	for rows.Next() {
		var v float64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("error scanning %q: %w", field, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

// Classes implements table.Table.
func (t *Table) Classes(field string) ([]int, error) {
	if err := t.require(field); err != nil {
		return nil, err
	}
	rows, err := t.db.Query(fmt.Sprintf("SELECT %s FROM %s ORDER BY rowid", quote(field), quote(t.name)))
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", field, err)
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var v sql.NullInt64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("error scanning %q: %w", field, err)
		}
		if v.Valid {
			out = append(out, int(v.Int64))
		} else {
			out = append(out, rule.Unclassified)
		}
	}
	return out, rows.Err()
}

// Begin implements table.Table.
func (t *Table) Begin() (table.Tx, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.open {
		return nil, table.ErrTxActive
	}
	tx, err := t.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	t.open = true
	return &sqlTx{t: t, tx: tx}, nil
}

func (t *Table) require(field string) error {
	return requireOn(t.db, t.name, field)
}

func requireOn(q querier, name, field string) error {
	fs, err := fields(q, name)
	if err != nil {
		return err
	}
	for _, f := range fs {
		if f.Name == field {
			return nil
		}
	}
	return fmt.Errorf("%q: %w", field, table.ErrMissingField)
}

type sqlTx struct {
	t    *Table
	tx   *sql.Tx
	done bool
}

// Assign runs a single UPDATE over the interval.
func (s *sqlTx) Assign(src, dst string, iv rule.Interval) (int64, error) {
	if s.done {
		return 0, table.ErrTxDone
	}
	if err := requireOn(s.tx, s.t.name, src); err != nil {
		return 0, err
	}
	if err := requireOn(s.tx, s.t.name, dst); err != nil {
		return 0, err
	}
	upper := "<"
	if iv.Closed {
		upper = "<="
	}
	q := fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s >= ? AND %s %s ?",
		quote(s.t.name), quote(dst), quote(src), quote(src), upper)
	res, err := s.tx.Exec(q, iv.Class, iv.Low, iv.High)
	if err != nil {
		return 0, fmt.Errorf("error assigning class %d: %w", iv.Class, err)
	}
	return res.RowsAffected()
}

func (s *sqlTx) Commit() error {
	if s.done {
		return table.ErrTxDone
	}
	s.finish()
	return s.tx.Commit()
}

func (s *sqlTx) Rollback() error {
	if s.done {
		return table.ErrTxDone
	}
	s.finish()
	return s.tx.Rollback()
}

func (s *sqlTx) finish() {
	s.done = true
	s.t.mu.Lock()
	s.t.open = false
	s.t.mu.Unlock()
}

// quote renders an SQL identifier.
func quote(id string) string {
	return `"` + strings.ReplaceAll(id, `"`, `""`) + `"`
}

// affinity maps a declared column type to a FieldType by SQLite's rules.
func affinity(decl string) table.FieldType {
	if strings.Contains(strings.ToUpper(decl), "INT") {
		return table.Integer
	}
	return table.Real
}
