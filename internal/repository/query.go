package repository

import (
	"strings"

	"gorm.io/gorm"
)

// Paging bounds shared by every list endpoint
const (
	DefaultLimit = 50
	MaxLimit     = 250
)

// ListOptions carries the filter and pagination shared by all listings.
// Filter is a case-insensitive substring; an empty filter matches everything.
type ListOptions struct {
	Filter string
	Limit  int
	Offset int
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s literally anywhere in a value
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// lowerASCII folds A-Z only, the same folding SQLite's LOWER applies
func lowerASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// whereContains restricts q to rows whose column contains filter, ignoring case.
// PostgreSQL folds with ILIKE under the column collation. Elsewhere both sides go
// through ASCII-only folding, so non-ASCII letters match in their stored case only.
func whereContains(q *gorm.DB, column string, filter string) *gorm.DB {
	if filter == "" {
		return q
	}
	if q.Dialector.Name() == "postgres" {
		return q.Where(column+" ILIKE ? ESCAPE '\\'", containsPattern(filter))
	}
	return q.Where("LOWER("+column+") LIKE ? ESCAPE '\\'", containsPattern(lowerASCII(filter)))
}

// paginate applies limit and offset, falling back to the defaults for zero values
func paginate(q *gorm.DB, opts ListOptions) *gorm.DB {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}
	return q.Limit(limit).Offset(offset)
}
