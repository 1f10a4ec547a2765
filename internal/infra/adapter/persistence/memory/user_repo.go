package memory

import (
	"context"

	"newsblog/internal/domain/entity"
	"newsblog/internal/repository"
)

type UserRepo struct{ store *BlogStore }

func NewUserRepo(store *BlogStore) repository.UserRepository {
	return &UserRepo{store: store}
}

func (repo *UserRepo) List(_ context.Context) ([]*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	users := make([]*entity.User, 0, len(repo.store.users))
	for i := range repo.store.users {
		u := repo.store.users[i]
		users = append(users, &u)
	}
	return users, nil
}

func (repo *UserRepo) Get(_ context.Context, id int64) (*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for i := range repo.store.users {
		if repo.store.users[i].ID == id {
			u := repo.store.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (repo *UserRepo) Create(_ context.Context, user *entity.User) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.lastUserID++
	user.ID = repo.store.lastUserID
	repo.store.users = append(repo.store.users, *user)
	return nil
}

func (repo *UserRepo) Count(_ context.Context) (int64, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()
	return int64(len(repo.store.users)), nil
}
