// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"strings"

	"github.com/danielhkuo/sportscal/db"
)

// selectQuery composes a base SELECT with predicates added on demand.
// Values are always bound, never interpolated.
type selectQuery struct {
	base    string
	clauses []string
	args    []any
	orderBy string
}

func newSelect(base string) *selectQuery {
	return &selectQuery{base: base}
}

// where adds a predicate written with ? placeholders
func (q *selectQuery) where(clause string, args ...any) *selectQuery {
	q.clauses = append(q.clauses, clause)
	q.args = append(q.args, args...)
	return q
}

// whereLike adds a case-insensitive substring match on one column
func (q *selectQuery) whereLike(column, value string) *selectQuery {
	return q.where(likeClause(column), containsPattern(value))
}

// whereAnyLike matches value as a substring of any of the columns
func (q *selectQuery) whereAnyLike(columns []string, value string) *selectQuery {
	if len(columns) == 0 {
		return q
	}
	pattern := containsPattern(value)
	parts := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		parts[i] = likeClause(col)
		args[i] = pattern
	}
	return q.where("("+strings.Join(parts, " OR ")+")", args...)
}

func (q *selectQuery) order(by string) *selectQuery {
	q.orderBy = by
	return q
}

func (q *selectQuery) build(dialect db.Dialect) (string, []any) {
	var b strings.Builder
	b.WriteString(q.base)
	if len(q.clauses) > 0 {
		b.WriteString("\nWHERE ")
		b.WriteString(strings.Join(q.clauses, "\n  AND "))
	}
	if q.orderBy != "" {
		b.WriteString("\nORDER BY ")
		b.WriteString(q.orderBy)
	}
	return dialect.Rebind(b.String()), q.args
}

// likeClause folds both sides with the database's LOWER so they always agree
func likeClause(column string) string {
	return "LOWER(" + column + `) LIKE LOWER(?) ESCAPE '\'`
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a %value% pattern with LIKE wildcards in value escaped.
func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}
