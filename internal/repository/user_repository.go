// Package repository declares the persistence contracts used by the use cases.
// Every Get returns (nil, nil) when the record does not exist.
package repository

import (
	"context"

	"newsblog/internal/domain/entity"
)

type UserRepository interface {
	List(ctx context.Context) ([]*entity.User, error)
	Get(ctx context.Context, id int64) (*entity.User, error)
	// Create assigns user.ID.
	Create(ctx context.Context, user *entity.User) error
	Count(ctx context.Context) (int64, error)
}
