package feed

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/sony/gobreaker"

	"newsblog/internal/resilience/circuitbreaker"
	"newsblog/internal/usecase/ingest"
)

const userAgent = "newsblog-ingest/1.0"

// RSSFetcher parses RSS and Atom feeds with gofeed. Each feed host gets its
// own circuit breaker so one failing publisher does not block the others.
type RSSFetcher struct {
	client      *http.Client
	breakers    *circuitbreaker.Registry
	denyPrivate bool
}

func NewRSSFetcher(client *http.Client, denyPrivate bool) *RSSFetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &RSSFetcher{
		client:      client,
		breakers:    circuitbreaker.NewRegistry(circuitbreaker.FeedFetchConfig()),
		denyPrivate: denyPrivate,
	}
}

func (f *RSSFetcher) Fetch(ctx context.Context, feedURL string) ([]ingest.FeedItem, error) {
	u, err := ValidateURL(feedURL, f.denyPrivate)
	if err != nil {
		return nil, err
	}

	cb := f.breakers.For(u.Host)
	result, err := cb.Execute(func() (interface{}, error) {
		return f.parse(ctx, feedURL)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			slog.Warn("feed host circuit open, request rejected",
				slog.String("host", u.Host),
				slog.String("url", feedURL))
		}
		return nil, err
	}
	return result.([]ingest.FeedItem), nil
}

func (f *RSSFetcher) parse(ctx context.Context, feedURL string) ([]ingest.FeedItem, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = userAgent
	fp.Client = f.client

	parsed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}

	items := make([]ingest.FeedItem, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		items = append(items, toFeedItem(it))
	}
	return items, nil
}

func toFeedItem(it *gofeed.Item) ingest.FeedItem {
	out := ingest.FeedItem{
		Title:       ExtractText(it.Title),
		Description: ExtractText(it.Description),
		Content:     ExtractText(it.Content),
		Link:        strings.TrimSpace(it.Link),
		GUID:        strings.TrimSpace(it.GUID),
		ImageURL:    imageOf(it),
	}
	switch {
	case it.PublishedParsed != nil:
		out.PublishedAt = *it.PublishedParsed
	case it.UpdatedParsed != nil:
		out.PublishedAt = *it.UpdatedParsed
	}
	return out
}

// imageOf prefers the item image, then an image enclosure, then the first
// <img> in the HTML body.
func imageOf(it *gofeed.Item) string {
	if it.Image != nil && it.Image.URL != "" {
		return it.Image.URL
	}
	for _, enc := range it.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}
	if img := ExtractImage(it.Content); img != "" {
		return img
	}
	return ExtractImage(it.Description)
}
