package post_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsblog/internal/domain/entity"
	"newsblog/internal/infra/adapter/persistence/memory"
	postUC "newsblog/internal/usecase/post"
)

type failingRepo struct{ err error }

func (f failingRepo) List(context.Context) ([]*entity.Post, error)     { return nil, f.err }
func (f failingRepo) Get(context.Context, int64) (*entity.Post, error) { return nil, f.err }
func (f failingRepo) Create(context.Context, *entity.Post) error       { return f.err }
func (f failingRepo) Count(context.Context) (int64, error)             { return 0, f.err }

func newService() *postUC.Service {
	return &postUC.Service{Repo: memory.NewPostRepo(memory.NewBlogStore())}
}

func TestService_CreateWithDanglingAuthorInMemory(t *testing.T) {
	svc := newService()

	p, err := svc.Create(context.Background(), postUC.CreateInput{Title: "Post 1", Body: "body", AuthorID: 42})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	assert.Equal(t, int64(42), p.AuthorID)
}

func TestService_CreateValidation(t *testing.T) {
	tests := []struct {
		name      string
		in        postUC.CreateInput
		wantField string
	}{
		{"empty title", postUC.CreateInput{Body: "b", AuthorID: 1}, "title"},
		{"long title", postUC.CreateInput{Title: strings.Repeat("x", 101), Body: "b", AuthorID: 1}, "title"},
		{"long body", postUC.CreateInput{Title: "t", Body: strings.Repeat("x", 1001), AuthorID: 1}, "body"},
		{"author zero", postUC.CreateInput{Title: "t", Body: "b"}, "author_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newService().Create(context.Background(), tt.in)
			var ve *entity.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestService_Get(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	created, err := svc.Create(ctx, postUC.CreateInput{Title: "t", Body: "b", AuthorID: 1})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "id", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.Get(ctx, "post_id", 7)
	assert.ErrorIs(t, err, postUC.ErrPostNotFound)
	assert.EqualError(t, err, "post not found")

	_, err = svc.Get(ctx, "post_id", 100)
	var ve *entity.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "post_id", ve.Field)
}

func TestService_RepoErrorsAreWrapped(t *testing.T) {
	boom := errors.New("fk violation")
	svc := &postUC.Service{Repo: failingRepo{err: boom}}

	_, err := svc.Create(context.Background(), postUC.CreateInput{Title: "t", Body: "b", AuthorID: 9})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, entity.ErrValidationFailed)

	_, err = svc.List(context.Background())
	assert.ErrorIs(t, err, boom)
}
