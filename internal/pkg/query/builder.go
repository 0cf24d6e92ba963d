// Package query builds parameterized PostgreSQL SELECT statements.
package query

import (
	"fmt"
	"strings"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Statement is SQL text with its positional arguments ($1, $2, ...).
type Statement struct {
	SQL  string
	Args []any
}

type orderTerm struct {
	expr string
	dir  Direction
}

// Builder constructs SELECT queries with WHERE, ORDER BY, LIMIT and OFFSET.
// Every method returns a new Builder; placeholders are numbered at Build time.
type Builder struct {
	table        string
	selectCols   []string
	whereClauses []Condition
	orderBy      []orderTerm
	limitVal     int64
	offsetVal    int64
}

// From creates a new Builder for the specified table.
func From(table string) *Builder {
	return &Builder{table: table}
}

// Select appends columns or expressions to the select list.
func (b *Builder) Select(columns ...string) *Builder {
	nb := b.clone()
	nb.selectCols = append(nb.selectCols, columns...)
	return nb
}

// Where adds a condition. Multiple calls are combined with AND.
func (b *Builder) Where(condition Condition) *Builder {
	nb := b.clone()
	nb.whereClauses = append(nb.whereClauses, condition)
	return nb
}

// OrderBy appends a sort term. Terms apply in call order.
func (b *Builder) OrderBy(expr string, direction Direction) *Builder {
	nb := b.clone()
	nb.orderBy = append(nb.orderBy, orderTerm{expr: expr, dir: direction})
	return nb
}

func (b *Builder) Limit(limit int64) *Builder {
	nb := b.clone()
	nb.limitVal = limit
	return nb
}

func (b *Builder) Offset(offset int64) *Builder {
	nb := b.clone()
	nb.offsetVal = offset
	return nb
}

// Count returns a builder selecting COUNT(*) over the same WHERE clause,
// with ordering and pagination dropped.
func (b *Builder) Count() *Builder {
	return b.Aggregate("COUNT(*)")
}

// Aggregate replaces the select list with aggregate expressions and drops
// ordering and pagination.
func (b *Builder) Aggregate(exprs ...string) *Builder {
	nb := b.clone()
	nb.selectCols = append([]string(nil), exprs...)
	nb.orderBy = nil
	nb.limitVal = 0
	nb.offsetVal = 0
	return nb
}

// Build renders the statement.
func (b *Builder) Build() Statement {
	var sql strings.Builder
	var args []any

	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectCols, ", "))
	}
	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	if len(b.whereClauses) > 0 {
		sql.WriteString(" WHERE ")
		parts := make([]string, 0, len(b.whereClauses))
		for _, condition := range b.whereClauses {
			fragment, condArgs := condition.SQL(len(args) + 1)
			parts = append(parts, fragment)
			args = append(args, condArgs...)
		}
		sql.WriteString(strings.Join(parts, " AND "))
	}

	if len(b.orderBy) > 0 {
		sql.WriteString(" ORDER BY ")
		terms := make([]string, 0, len(b.orderBy))
		for _, t := range b.orderBy {
			if t.dir == Desc {
				terms = append(terms, t.expr+" DESC")
			} else {
				terms = append(terms, t.expr+" ASC")
			}
		}
		sql.WriteString(strings.Join(terms, ", "))
	}

	if b.limitVal > 0 {
		args = append(args, b.limitVal)
		fmt.Fprintf(&sql, " LIMIT $%d", len(args))
	}
	if b.offsetVal > 0 {
		args = append(args, b.offsetVal)
		fmt.Fprintf(&sql, " OFFSET $%d", len(args))
	}

	return Statement{SQL: sql.String(), Args: args}
}

func (b *Builder) clone() *Builder {
	return &Builder{
		table:        b.table,
		selectCols:   append([]string(nil), b.selectCols...),
		whereClauses: append([]Condition(nil), b.whereClauses...),
		orderBy:      append([]orderTerm(nil), b.orderBy...),
		limitVal:     b.limitVal,
		offsetVal:    b.offsetVal,
	}
}
