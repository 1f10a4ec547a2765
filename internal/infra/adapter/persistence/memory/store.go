// Package memory implements the repository contracts on process memory.
// Stores are safe for concurrent use; ids are assigned as max existing id + 1
// under the store's write lock. There is no referential integrity.
package memory

import (
	"sync"
	"time"

	"newsblog/internal/domain/entity"
)

// BlogStore holds users and posts.
type BlogStore struct {
	mu         sync.RWMutex
	users      []entity.User
	posts      []entity.Post
	lastUserID int64
	lastPostID int64
}

func NewBlogStore() *BlogStore {
	return &BlogStore{}
}

// NewsStore holds news sources and items. Both live behind one lock so that
// source aggregation sees a consistent item count.
type NewsStore struct {
	mu           sync.RWMutex
	sources      []entity.NewsSource
	items        []entity.NewsItem
	lastSourceID int64
	lastItemID   int64
	now          func() time.Time
}

// NewNewsStore creates an empty store. now stamps created_at; nil means time.Now.
func NewNewsStore(now func() time.Time) *NewsStore {
	if now == nil {
		now = time.Now
	}
	return &NewsStore{now: now}
}
