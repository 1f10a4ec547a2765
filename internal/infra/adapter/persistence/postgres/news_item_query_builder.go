package postgres

import (
	"fmt"
	"strings"

	"newsblog/internal/repository"
)

// NewsItemQueryBuilder builds the WHERE clause for news item listing.
// It is shared by the paginated SELECT and COUNT queries.
type NewsItemQueryBuilder struct{}

func NewNewsItemQueryBuilder() *NewsItemQueryBuilder {
	return &NewsItemQueryBuilder{}
}

// BuildWhereClause returns a clause starting with "WHERE" (or "" when no filter
// applies) and its arguments, numbered from $1.
func (qb *NewsItemQueryBuilder) BuildWhereClause(filters repository.NewsItemFilters, tableAlias string) (clause string, args []interface{}) {
	col := "published_at"
	if tableAlias != "" {
		col = tableAlias + ".published_at"
	}

	var conditions []string
	if filters.From != nil {
		args = append(args, *filters.From)
		conditions = append(conditions, fmt.Sprintf("%s >= $%d", col, len(args)))
	}
	if filters.To != nil {
		args = append(args, *filters.To)
		conditions = append(conditions, fmt.Sprintf("%s <= $%d", col, len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
