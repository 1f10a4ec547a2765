package memory

import (
	"context"

	"newsblog/internal/domain/entity"
	"newsblog/internal/repository"
)

type PostRepo struct{ store *BlogStore }

func NewPostRepo(store *BlogStore) repository.PostRepository {
	return &PostRepo{store: store}
}

func (repo *PostRepo) List(_ context.Context) ([]*entity.Post, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	posts := make([]*entity.Post, 0, len(repo.store.posts))
	for i := range repo.store.posts {
		p := repo.store.posts[i]
		posts = append(posts, &p)
	}
	return posts, nil
}

func (repo *PostRepo) Get(_ context.Context, id int64) (*entity.Post, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for i := range repo.store.posts {
		if repo.store.posts[i].ID == id {
			p := repo.store.posts[i]
			return &p, nil
		}
	}
	return nil, nil
}

// Create does not check that the author exists.
func (repo *PostRepo) Create(_ context.Context, post *entity.Post) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.lastPostID++
	post.ID = repo.store.lastPostID
	repo.store.posts = append(repo.store.posts, *post)
	return nil
}

func (repo *PostRepo) Count(_ context.Context) (int64, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()
	return int64(len(repo.store.posts)), nil
}
