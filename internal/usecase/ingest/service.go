// Package ingest pulls RSS/Atom feeds of the active news sources into the news
// store. It runs once per invocation; there is no scheduler and no retry.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"newsblog/internal/domain/entity"
	"newsblog/internal/observability/metrics"
	"newsblog/internal/repository"
	"newsblog/internal/usecase/newsitem"
)

const defaultParallelism = 4

// FeedItem is one entry of a parsed feed. Empty strings mean absent.
type FeedItem struct {
	Title       string
	Description string
	Content     string
	Link        string
	ImageURL    string
	GUID        string
	PublishedAt time.Time
}

type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]FeedItem, error)
}

// ContentFetcher extracts the full article text behind a link.
type ContentFetcher interface {
	FetchContent(ctx context.Context, url string) (string, error)
}

type Stats struct {
	Sources  int
	Fetched  int64
	Inserted int64
	Skipped  int64
	Failed   int64
	Duration time.Duration
}

type Service struct {
	Sources repository.NewsSourceRepository
	Items   repository.NewsItemRepository
	Creator *newsitem.Service
	Fetcher FeedFetcher
	// Content is optional; when set, items without content get the extracted page text.
	Content ContentFetcher
	// Limiter paces feed requests across all workers. Nil means unpaced.
	Limiter     *rate.Limiter
	Parallelism int
	Now         func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Run ingests every active source. A source whose feed cannot be fetched is
// counted in Failed and skipped; a storage failure aborts the run.
func (s *Service) Run(ctx context.Context) (*Stats, error) {
	start := time.Now()
	stats := &Stats{}

	srcs, err := s.Sources.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active sources: %w", err)
	}
	stats.Sources = len(srcs)

	limit := s.Parallelism
	if limit <= 0 {
		limit = defaultParallelism
	}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for _, src := range srcs {
		eg.Go(func() error {
			return s.ingestSource(egCtx, src, stats)
		})
	}
	if err := eg.Wait(); err != nil {
		return stats, err
	}

	stats.Duration = time.Since(start)
	slog.Info("ingest completed",
		slog.Int("sources", stats.Sources),
		slog.Int64("fetched", stats.Fetched),
		slog.Int64("inserted", stats.Inserted),
		slog.Int64("skipped", stats.Skipped),
		slog.Int64("failed", stats.Failed),
		slog.Duration("duration", stats.Duration))
	return stats, nil
}

func (s *Service) ingestSource(ctx context.Context, src *entity.NewsSource, stats *Stats) error {
	logger := slog.Default().With(slog.Int64("source_id", src.ID), slog.String("url", src.URL))
	start := time.Now()

	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx); err != nil {
			return err
		}
	}

	feed, err := s.Fetcher.Fetch(ctx, src.URL)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		logger.Warn("feed fetch failed", slog.Any("error", err))
		metrics.RecordIngestError(src.ID, "fetch")
		atomic.AddInt64(&stats.Failed, 1)
		return nil
	}
	atomic.AddInt64(&stats.Fetched, int64(len(feed)))

	guids := make([]string, 0, len(feed))
	for i := range feed {
		if feed[i].GUID == "" {
			feed[i].GUID = feed[i].Link
		}
		guids = append(guids, feed[i].GUID)
	}
	existing, err := s.Items.ExistingGUIDs(ctx, src.ID, guids)
	if err != nil {
		metrics.RecordIngestError(src.ID, "lookup")
		return fmt.Errorf("source %d: existing guids: %w", src.ID, err)
	}

	var inserted, skipped int64
	for _, it := range feed {
		if existing[it.GUID] {
			skipped++
			continue
		}
		// duplicates within the same feed
		existing[it.GUID] = true

		in := s.toInput(ctx, src.ID, it)
		if _, err := s.Creator.Create(ctx, in); err != nil {
			var ve *entity.ValidationError
			if errors.As(err, &ve) {
				logger.Warn("feed entry rejected", slog.String("guid", it.GUID), slog.Any("error", err))
				atomic.AddInt64(&stats.Failed, 1)
				continue
			}
			metrics.RecordIngestError(src.ID, "create")
			return fmt.Errorf("source %d: %w", src.ID, err)
		}
		inserted++
	}
	atomic.AddInt64(&stats.Inserted, inserted)
	atomic.AddInt64(&stats.Skipped, skipped)

	// the stamp is written even if the run is being cancelled
	if err := s.Sources.TouchParsedAt(context.WithoutCancel(ctx), src.ID, s.now()); err != nil {
		metrics.RecordIngestError(src.ID, "touch")
		return fmt.Errorf("source %d: touch parsed_at: %w", src.ID, err)
	}

	duration := time.Since(start)
	metrics.RecordIngest(src.ID, duration, int64(len(feed)), inserted, skipped)
	logger.Info("source ingested",
		slog.Int("feed_items", len(feed)),
		slog.Int64("inserted", inserted),
		slog.Int64("skipped", skipped),
		slog.Duration("duration", duration))
	return nil
}

func (s *Service) toInput(ctx context.Context, sourceID int64, it FeedItem) newsitem.CreateInput {
	content := it.Content
	if content == "" && it.Link != "" && s.Content != nil {
		text, err := s.Content.FetchContent(ctx, it.Link)
		if err != nil {
			slog.Debug("content fetch failed, keeping feed text", slog.String("link", it.Link), slog.Any("error", err))
		} else {
			content = text
		}
	}

	published := it.PublishedAt
	if published.IsZero() {
		published = s.now()
	}
	return newsitem.CreateInput{
		SourceID:    sourceID,
		Title:       it.Title,
		Description: optional(it.Description),
		Content:     optional(content),
		Link:        optional(it.Link),
		ImageURL:    optional(it.ImageURL),
		GUID:        it.GUID,
		PublishedAt: published,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
