package db

import (
	"database/sql"
	"fmt"

	"gorm.io/gorm"
)

// MigrateUp creates the news tables and their indexes. Every statement is
// idempotent.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS news_sources (
    id             BIGSERIAL PRIMARY KEY,
    name           VARCHAR(255) NOT NULL,
    url            VARCHAR(500) NOT NULL,
    description    TEXT,
    is_active      BOOLEAN NOT NULL DEFAULT TRUE,
    country        VARCHAR(10) NOT NULL DEFAULT 'rus',
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
    last_parsed_at TIMESTAMPTZ,
    updated_at     TIMESTAMPTZ
)`); err != nil {
		return fmt.Errorf("create news_sources: %w", err)
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS news_items (
    id           BIGSERIAL PRIMARY KEY,
    source_id    BIGINT NOT NULL REFERENCES news_sources(id),
    title        VARCHAR(500) NOT NULL,
    description  TEXT,
    content      TEXT,
    link         VARCHAR(1000),
    image_url    VARCHAR(500),
    guid         VARCHAR(500) NOT NULL,
    published_at TIMESTAMPTZ NOT NULL,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at   TIMESTAMPTZ
)`); err != nil {
		return fmt.Errorf("create news_items: %w", err)
	}

	indexes := []string{
		// listing order
		`CREATE INDEX IF NOT EXISTS idx_news_items_published_at ON news_items(published_at DESC, id)`,
		// news_count join
		`CREATE INDEX IF NOT EXISTS idx_news_items_source_id ON news_items(source_id)`,
		// ingest guid lookups; not unique
		`CREATE INDEX IF NOT EXISTS idx_news_items_source_guid ON news_items(source_id, guid)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}

// MigrateDown drops the news tables. All news data is lost.
func MigrateDown(db *sql.DB) error {
	for _, stmt := range []string{
		`DROP TABLE IF EXISTS news_items`,
		`DROP TABLE IF EXISTS news_sources`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// AutoMigrate creates or updates the blog tables for the given GORM models.
func AutoMigrate(gdb *gorm.DB, models ...any) error {
	if err := gdb.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
