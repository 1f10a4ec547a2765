package postgres

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"newsblog/internal/repository"
)

func TestNewsItemQueryBuilder_BuildWhereClause(t *testing.T) {
	from := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 12, 23, 59, 59, 999999000, time.UTC)

	tests := []struct {
		name       string
		filters    repository.NewsItemFilters
		alias      string
		wantClause string
		wantArgs   []interface{}
	}{
		{name: "no filters", wantClause: ""},
		{
			name:       "from only",
			filters:    repository.NewsItemFilters{From: &from},
			wantClause: "WHERE published_at >= $1",
			wantArgs:   []interface{}{from},
		},
		{
			name:       "to only with alias",
			filters:    repository.NewsItemFilters{To: &to},
			alias:      "n",
			wantClause: "WHERE n.published_at <= $1",
			wantArgs:   []interface{}{to},
		},
		{
			name:       "both bounds",
			filters:    repository.NewsItemFilters{From: &from, To: &to},
			alias:      "n",
			wantClause: "WHERE n.published_at >= $1 AND n.published_at <= $2",
			wantArgs:   []interface{}{from, to},
		},
	}

	qb := NewNewsItemQueryBuilder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := qb.BuildWhereClause(tt.filters, tt.alias)
			if clause != tt.wantClause {
				t.Errorf("clause = %q, want %q", clause, tt.wantClause)
			}
			if diff := cmp.Diff(tt.wantArgs, args); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
