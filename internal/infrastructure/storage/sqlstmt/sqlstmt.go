// Package sqlstmt builds the five record statements for a schema.
// Identifiers come from validated configuration and are quoted; values are
// always bound as positional parameters.
package sqlstmt

import (
	"strconv"
	"strings"

	"sensorlist/internal/domain/record"

	"github.com/jackc/pgx/v5"
)

// Placeholder renders the n-th (1-based) bind parameter.
type Placeholder func(n int) string

// Dollar is the PostgreSQL style: $1, $2, ...
func Dollar(n int) string { return "$" + strconv.Itoa(n) }

// Question is the SQLite / database/sql style: ?, ?, ...
func Question(int) string { return "?" }

type Statements struct {
	List   string
	Get    string
	Insert string
	Update string
	Delete string

	columns []string
}

// Build renders statements for schema using ph for parameters.
func Build(schema record.Schema, ph Placeholder) Statements {
	table := quote(schema.Table)
	id := quote(record.IDColumn)

	selectCols := make([]string, 0, len(schema.Columns)+1)
	selectCols = append(selectCols, id)
	for _, c := range schema.Columns {
		selectCols = append(selectCols, quote(c))
	}
	projection := strings.Join(selectCols, ", ")

	values := make([]string, len(selectCols))
	for i := range values {
		values[i] = ph(i + 1)
	}

	sets := make([]string, len(schema.Columns))
	for i, c := range schema.Columns {
		sets[i] = quote(c) + " = " + ph(i+1)
	}
	idParam := ph(len(schema.Columns) + 1)

	return Statements{
		List:   "SELECT " + projection + " FROM " + table + " ORDER BY " + id,
		Get:    "SELECT " + projection + " FROM " + table + " WHERE " + id + " = " + ph(1),
		Insert: "INSERT INTO " + table + " (" + projection + ") VALUES (" + strings.Join(values, ", ") + ")",
		Update: "UPDATE " + table + " SET " + strings.Join(sets, ", ") + " WHERE " + id + " = " + idParam +
			" RETURNING " + projection,
		Delete: "DELETE FROM " + table + " WHERE " + id + " = " + ph(1),

		columns: append([]string(nil), schema.Columns...),
	}
}

// InsertArgs returns the bind values for Insert.
func (s Statements) InsertArgs(rec *record.Record) []any {
	args := make([]any, 0, len(s.columns)+1)
	args = append(args, rec.ID)
	for _, c := range s.columns {
		args = append(args, rec.Attributes[c])
	}
	return args
}

// UpdateArgs returns the bind values for Update.
func (s Statements) UpdateArgs(rec *record.Record) []any {
	args := make([]any, 0, len(s.columns)+1)
	for _, c := range s.columns {
		args = append(args, rec.Attributes[c])
	}
	return append(args, rec.ID)
}

// Scanner is satisfied by pgx.Row, pgx.Rows, *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Scan reads one row in projection order.
func (s Statements) Scan(row Scanner) (record.Record, error) {
	var id int
	vals := make([]string, len(s.columns))

	dest := make([]any, 0, len(vals)+1)
	dest = append(dest, &id)
	for i := range vals {
		dest = append(dest, &vals[i])
	}

	if err := row.Scan(dest...); err != nil {
		return record.Record{}, err
	}

	attrs := make(record.Attributes, len(vals))
	for i, c := range s.columns {
		attrs[c] = vals[i]
	}
	return record.Record{ID: id, Attributes: attrs}, nil
}

func quote(ident string) string {
	return pgx.Identifier{ident}.Sanitize()
}
