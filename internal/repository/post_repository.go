package repository

import (
	"context"

	"newsblog/internal/domain/entity"
)

type PostRepository interface {
	List(ctx context.Context) ([]*entity.Post, error)
	Get(ctx context.Context, id int64) (*entity.Post, error)
	// Create assigns post.ID.
	Create(ctx context.Context, post *entity.Post) error
	Count(ctx context.Context) (int64, error)
}
