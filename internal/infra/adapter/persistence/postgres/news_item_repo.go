package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"newsblog/internal/domain/entity"
	"newsblog/internal/repository"
)

type NewsItemRepo struct {
	db DBTX
	qb *NewsItemQueryBuilder
}

func NewNewsItemRepo(db DBTX) repository.NewsItemRepository {
	return &NewsItemRepo{db: db, qb: NewNewsItemQueryBuilder()}
}

func (repo *NewsItemRepo) ListPaginated(
	ctx context.Context,
	filters repository.NewsItemFilters,
	offset, limit int,
) ([]*entity.NewsItem, error) {
	where, args := repo.qb.BuildWhereClause(filters, "n")
	args = append(args, limit, offset)
	query := fmt.Sprintf(`
SELECT n.id, n.source_id, n.title, n.description, n.content, n.link, n.image_url,
       n.guid, n.published_at, n.created_at, n.updated_at
FROM news_items n
%s
ORDER BY n.published_at DESC, n.id ASC
LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPaginated: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]*entity.NewsItem, 0, limit)
	for rows.Next() {
		var it entity.NewsItem
		if err := rows.Scan(
			&it.ID, &it.SourceID, &it.Title, &it.Description, &it.Content, &it.Link, &it.ImageURL,
			&it.GUID, &it.PublishedAt, &it.CreatedAt, &it.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListPaginated: Scan: %w", err)
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPaginated: rows.Err: %w", err)
	}
	return items, nil
}

func (repo *NewsItemRepo) Create(ctx context.Context, item *entity.NewsItem) error {
	const query = `
INSERT INTO news_items (source_id, title, description, content, link, image_url, guid, published_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		item.SourceID, item.Title, item.Description, item.Content,
		item.Link, item.ImageURL, item.GUID, item.PublishedAt,
	).Scan(&item.ID, &item.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *NewsItemRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM news_items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}

func (repo *NewsItemRepo) ExistingGUIDs(ctx context.Context, sourceID int64, guids []string) (map[string]bool, error) {
	found := make(map[string]bool)
	if len(guids) == 0 {
		return found, nil
	}

	const query = `SELECT guid FROM news_items WHERE source_id = $1 AND guid = ANY($2)`
	rows, err := repo.db.QueryContext(ctx, query, sourceID, pq.Array(guids))
	if err != nil {
		return nil, fmt.Errorf("ExistingGUIDs: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var guid string
		if err := rows.Scan(&guid); err != nil {
			return nil, fmt.Errorf("ExistingGUIDs: Scan: %w", err)
		}
		found[guid] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ExistingGUIDs: rows.Err: %w", err)
	}
	return found, nil
}
