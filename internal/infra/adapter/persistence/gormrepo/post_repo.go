package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"newsblog/internal/domain/entity"
	"newsblog/internal/repository"
)

type PostRepo struct{ db *gorm.DB }

func NewPostRepo(db *gorm.DB) repository.PostRepository {
	return &PostRepo{db: db}
}

func (repo *PostRepo) List(ctx context.Context) ([]*entity.Post, error) {
	var rows []postModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	posts := make([]*entity.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, rows[i].toEntity())
	}
	return posts, nil
}

func (repo *PostRepo) Get(ctx context.Context, id int64) (*entity.Post, error) {
	var row postModel
	err := repo.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return row.toEntity(), nil
}

// Create relies on the posts.author_id foreign key; a missing author surfaces
// as a storage error.
func (repo *PostRepo) Create(ctx context.Context, post *entity.Post) error {
	row := postModel{Title: post.Title, Body: post.Body, AuthorID: post.AuthorID}
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	post.ID = row.ID
	return nil
}

func (repo *PostRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := repo.db.WithContext(ctx).Model(&postModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}
