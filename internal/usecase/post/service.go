// Package post provides the blog post use cases.
package post

import (
	"context"
	"fmt"

	"newsblog/internal/domain/entity"
	"newsblog/internal/repository"
)

// ErrPostNotFound is returned by Get when no post has the requested id.
var ErrPostNotFound error = &entity.NotFoundError{Resource: "post"}

type CreateInput struct {
	Title    string
	Body     string
	AuthorID int64
}

type Service struct {
	Repo repository.PostRepository
}

func (s *Service) List(ctx context.Context) ([]*entity.Post, error) {
	posts, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// Get validates the id under the given field name ("id" for the path lookup,
// "post_id" for search) before querying.
func (s *Service) Get(ctx context.Context, field string, id int64) (*entity.Post, error) {
	if err := entity.ValidateLookupID(field, id); err != nil {
		return nil, err
	}
	p, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if p == nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}

// Create does not look the author up. The PostgreSQL foreign key rejects a
// dangling author_id as a storage error; the in-memory store accepts it.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Post, error) {
	p := &entity.Post{
		Title:    in.Title,
		Body:     in.Body,
		AuthorID: in.AuthorID,
	}
	if err := entity.Validate(p); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return p, nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}
