package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"newsblog/internal/domain/entity"
	"newsblog/internal/repository"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	var rows []userModel
	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	users := make([]*entity.User, 0, len(rows))
	for i := range rows {
		users = append(users, rows[i].toEntity())
	}
	return users, nil
}

func (repo *UserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	var row userModel
	err := repo.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return row.toEntity(), nil
}

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	row := userModel{Name: user.Name, Surname: user.Surname, Age: user.Age}
	if err := repo.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	user.ID = row.ID
	return nil
}

func (repo *UserRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := repo.db.WithContext(ctx).Model(&userModel{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}
