// Package user provides the blog user use cases.
package user

import (
	"context"
	"fmt"

	"newsblog/internal/domain/entity"
	"newsblog/internal/repository"
)

// ErrUserNotFound is returned by Get when no user has the requested id.
var ErrUserNotFound error = &entity.NotFoundError{Resource: "user"}

type CreateInput struct {
	Name    string
	Surname string
	Age     int
}

type Service struct {
	Repo repository.UserRepository
}

func (s *Service) List(ctx context.Context) ([]*entity.User, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get returns a ValidationError for ids outside [1, 100) and ErrUserNotFound
// for unknown ids.
func (s *Service) Get(ctx context.Context, id int64) (*entity.User, error) {
	if err := entity.ValidateLookupID("id", id); err != nil {
		return nil, err
	}
	u, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.User, error) {
	u := &entity.User{
		Name:    in.Name,
		Surname: in.Surname,
		Age:     in.Age,
	}
	if err := entity.Validate(u); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	n, err := s.Repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}
