package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// Format decides how positional placeholders are rendered.
type Format int

const (
	// Dollar renders $1, $2, ... (postgres).
	Dollar Format = iota
	// Question renders ? for every argument (sqlite, mysql).
	Question
)

// FormatFor maps a database/sql driver name to its placeholder format.
func FormatFor(driver string) Format {
	switch driver {
	case "sqlite3", "sqlite", "mysql":
		return Question
	default:
		return Dollar
	}
}

type state struct {
	buf    strings.Builder
	args   []any
	format Format
}

func (s *state) bind(value any) {
	s.args = append(s.args, value)
	if s.format == Question {
		s.buf.WriteByte('?')
		return
	}
	s.buf.WriteByte('$')
	s.buf.WriteString(strconv.Itoa(len(s.args)))
}

type Condition interface {
	appendSQL(s *state)
}

type eqCondition struct {
	column string
	value  any
}

func Eq(column string, value any) Condition {
	return eqCondition{column: column, value: value}
}

func (c eqCondition) appendSQL(s *state) {
	s.buf.WriteString(c.column)
	s.buf.WriteString(" = ")
	s.bind(c.value)
}

type isNullCondition struct {
	column string
}

func IsNull(column string) Condition {
	return isNullCondition{column: column}
}

func (c isNullCondition) appendSQL(s *state) {
	s.buf.WriteString(c.column)
	s.buf.WriteString(" IS NULL")
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
	format  Format
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) PlaceholderFormat(format Format) *SelectBuilder {
	b.format = format
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	s := &state{format: b.format}
	s.buf.WriteString("SELECT ")
	s.buf.WriteString(strings.Join(b.columns, ", "))
	s.buf.WriteString(" FROM ")
	s.buf.WriteString(b.table)
	appendWhereClause(s, b.where)
	if len(b.orderBy) > 0 {
		s.buf.WriteString(" ORDER BY ")
		s.buf.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		s.buf.WriteString(" LIMIT ")
		s.buf.WriteString(strconv.Itoa(b.limit))
	}

	return s.buf.String(), s.args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
	format  Format
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// Suffix is appended verbatim, e.g. an ON CONFLICT clause.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) PlaceholderFormat(format Format) *InsertBuilder {
	b.format = format
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	s := &state{format: b.format, args: make([]any, 0, len(b.rows)*len(b.columns))}
	s.buf.WriteString("INSERT INTO ")
	s.buf.WriteString(b.table)
	s.buf.WriteString(" (")
	s.buf.WriteString(strings.Join(b.columns, ", "))
	s.buf.WriteString(") VALUES ")

	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			s.buf.WriteString(", ")
		}
		s.buf.WriteString("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				s.buf.WriteString(", ")
			}
			s.bind(value)
		}
		s.buf.WriteString(")")
	}

	if b.suffix != "" {
		s.buf.WriteString(" ")
		s.buf.WriteString(b.suffix)
	}

	return s.buf.String(), s.args, nil
}

type setClause struct {
	column string
	value  any
}

type UpdateBuilder struct {
	table  string
	sets   []setClause
	where  []Condition
	format Format
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, setClause{column: column, value: value})
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) PlaceholderFormat(format Format) *UpdateBuilder {
	b.format = format
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.sets) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}

	s := &state{format: b.format}
	s.buf.WriteString("UPDATE ")
	s.buf.WriteString(b.table)
	s.buf.WriteString(" SET ")
	for i, set := range b.sets {
		if i > 0 {
			s.buf.WriteString(", ")
		}
		s.buf.WriteString(set.column)
		s.buf.WriteString(" = ")
		s.bind(set.value)
	}
	appendWhereClause(s, b.where)

	return s.buf.String(), s.args, nil
}

type DeleteBuilder struct {
	table  string
	where  []Condition
	format Format
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *DeleteBuilder) PlaceholderFormat(format Format) *DeleteBuilder {
	b.format = format
	return b
}

// ToSQL refuses to build a DELETE without conditions.
func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("delete table is required")
	}
	if len(b.where) == 0 {
		return "", nil, fmt.Errorf("delete conditions are required")
	}

	s := &state{format: b.format}
	s.buf.WriteString("DELETE FROM ")
	s.buf.WriteString(b.table)
	appendWhereClause(s, b.where)
	return s.buf.String(), s.args, nil
}

func appendWhereClause(s *state, conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	s.buf.WriteString(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			s.buf.WriteString(" AND ")
		}
		c.appendSQL(s)
	}
}
