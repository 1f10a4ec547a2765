// Package demo fills empty stores with a small fixed data set so a fresh
// deployment has something to show. It only goes through the public use cases.
package demo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"newsblog/internal/usecase/newsitem"
	"newsblog/internal/usecase/newssource"
	"newsblog/internal/usecase/post"
	"newsblog/internal/usecase/user"
)

var demoUsers = []user.CreateInput{
	{Name: "Ivan", Surname: "Ivanov", Age: 17},
	{Name: "Petr", Surname: "Petrov", Age: 27},
	{Name: "Sidor", Surname: "Sidorov", Age: 47},
}

// SeedBlog creates three users and one post per user ("Post n" by the n-th
// user). It does nothing unless both users and posts are empty. The returned
// bool reports whether anything was written.
func SeedBlog(ctx context.Context, users *user.Service, posts *post.Service) (bool, error) {
	nu, err := users.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed blog: %w", err)
	}
	np, err := posts.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed blog: %w", err)
	}
	if nu > 0 || np > 0 {
		return false, nil
	}

	for i, in := range demoUsers {
		u, err := users.Create(ctx, in)
		if err != nil {
			return false, fmt.Errorf("seed user %d: %w", i+1, err)
		}
		n := i + 1
		_, err = posts.Create(ctx, post.CreateInput{
			Title:    fmt.Sprintf("Post %d", n),
			Body:     fmt.Sprintf("%d. Lorem ipsum dolor sit amet", n),
			AuthorID: u.ID,
		})
		if err != nil {
			return false, fmt.Errorf("seed post %d: %w", n, err)
		}
	}

	slog.Info("demo blog data seeded", slog.Int("users", len(demoUsers)), slog.Int("posts", len(demoUsers)))
	return true, nil
}

// SeedNews creates one source and two items published one and 26 hours
// before now. It does nothing unless sources and items are both empty.
func SeedNews(ctx context.Context, sources *newssource.Service, items *newsitem.Service, now time.Time) (bool, error) {
	existing, err := sources.ListWithCounts(ctx)
	if err != nil {
		return false, fmt.Errorf("seed news: %w", err)
	}
	ni, err := items.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("seed news: %w", err)
	}
	if len(existing) > 0 || ni > 0 {
		return false, nil
	}

	desc := "Russian news in Russian"
	src, err := sources.Create(ctx, newssource.CreateInput{
		Name:        "Lenta.ru",
		URL:         "https://lenta.ru/rss/news",
		Description: &desc,
	})
	if err != nil {
		return false, fmt.Errorf("seed source: %w", err)
	}

	for i, age := range []time.Duration{time.Hour, 26 * time.Hour} {
		n := i + 1
		link := fmt.Sprintf("https://lenta.ru/news/demo-%d/", n)
		_, err := items.Create(ctx, newsitem.CreateInput{
			SourceID:    src.ID,
			Title:       fmt.Sprintf("Demo news %d", n),
			Link:        &link,
			GUID:        link,
			PublishedAt: now.Add(-age),
		})
		if err != nil {
			return false, fmt.Errorf("seed news item %d: %w", n, err)
		}
	}

	slog.Info("demo news data seeded", slog.Int64("source_id", src.ID), slog.Int("items", 2))
	return true, nil
}
