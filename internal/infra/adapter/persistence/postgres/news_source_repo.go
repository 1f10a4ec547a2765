package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"newsblog/internal/domain/entity"
	"newsblog/internal/repository"
)

type NewsSourceRepo struct{ db DBTX }

func NewNewsSourceRepo(db DBTX) repository.NewsSourceRepository {
	return &NewsSourceRepo{db: db}
}

const newsSourceColumns = `s.id, s.name, s.url, s.description, s.is_active, s.country,
       s.created_at, s.last_parsed_at, s.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNewsSource(row rowScanner, extra ...any) (*entity.NewsSource, error) {
	var src entity.NewsSource
	dest := append([]any{
		&src.ID, &src.Name, &src.URL, &src.Description, &src.IsActive, &src.Country,
		&src.CreatedAt, &src.LastParsedAt, &src.UpdatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &src, nil
}

func (repo *NewsSourceRepo) Get(ctx context.Context, id int64) (*entity.NewsSource, error) {
	query := `
SELECT ` + newsSourceColumns + `
FROM news_sources s
WHERE s.id = $1
LIMIT 1`
	src, err := scanNewsSource(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return src, nil
}

func (repo *NewsSourceRepo) ListWithCounts(ctx context.Context) ([]repository.NewsSourceWithCount, error) {
	query := `
SELECT ` + newsSourceColumns + `,
       COUNT(n.id) AS news_count
FROM news_sources s
LEFT JOIN news_items n ON n.source_id = s.id
GROUP BY s.id
ORDER BY s.id ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListWithCounts: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]repository.NewsSourceWithCount, 0, 16)
	for rows.Next() {
		var count int64
		src, err := scanNewsSource(rows, &count)
		if err != nil {
			return nil, fmt.Errorf("ListWithCounts: Scan: %w", err)
		}
		out = append(out, repository.NewsSourceWithCount{Source: src, NewsCount: count})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListWithCounts: rows.Err: %w", err)
	}
	return out, nil
}

func (repo *NewsSourceRepo) ListActive(ctx context.Context) ([]*entity.NewsSource, error) {
	query := `
SELECT ` + newsSourceColumns + `
FROM news_sources s
WHERE s.is_active = TRUE
ORDER BY s.id ASC`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListActive: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	active := make([]*entity.NewsSource, 0, 16)
	for rows.Next() {
		src, err := scanNewsSource(rows)
		if err != nil {
			return nil, fmt.Errorf("ListActive: Scan: %w", err)
		}
		active = append(active, src)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListActive: rows.Err: %w", err)
	}
	return active, nil
}

func (repo *NewsSourceRepo) Create(ctx context.Context, source *entity.NewsSource) error {
	const query = `
INSERT INTO news_sources (name, url, description, is_active, country)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		source.Name, source.URL, source.Description, source.IsActive, source.Country,
	).Scan(&source.ID, &source.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *NewsSourceRepo) TouchParsedAt(ctx context.Context, id int64, t time.Time) error {
	const query = `UPDATE news_sources SET last_parsed_at = $1, updated_at = $1 WHERE id = $2`
	res, err := repo.db.ExecContext(ctx, query, t, id)
	if err != nil {
		return fmt.Errorf("TouchParsedAt: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("TouchParsedAt: source %d: %w", id, entity.ErrNotFound)
	}
	return nil
}
