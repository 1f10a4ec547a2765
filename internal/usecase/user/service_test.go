package user_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsblog/internal/domain/entity"
	"newsblog/internal/infra/adapter/persistence/memory"
	userUC "newsblog/internal/usecase/user"
)

type failingRepo struct{ err error }

func (f failingRepo) List(context.Context) ([]*entity.User, error)     { return nil, f.err }
func (f failingRepo) Get(context.Context, int64) (*entity.User, error) { return nil, f.err }
func (f failingRepo) Create(context.Context, *entity.User) error       { return f.err }
func (f failingRepo) Count(context.Context) (int64, error)             { return 0, f.err }

func newService() *userUC.Service {
	return &userUC.Service{Repo: memory.NewUserRepo(memory.NewBlogStore())}
}

func TestService_CreateAndGet(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	u1, err := svc.Create(ctx, userUC.CreateInput{Name: "Ivan", Surname: "Ivanov", Age: 17})
	require.NoError(t, err)
	u2, err := svc.Create(ctx, userUC.CreateInput{Name: "Petr", Surname: "Petrov", Age: 27})
	require.NoError(t, err)
	assert.Greater(t, u2.ID, u1.ID)

	got, err := svc.Get(ctx, u2.ID)
	require.NoError(t, err)
	assert.Equal(t, u2, got)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestService_CreateValidation(t *testing.T) {
	tests := []struct {
		name      string
		in        userUC.CreateInput
		wantField string
	}{
		{"age too high", userUC.CreateInput{Name: "A", Surname: "B", Age: 150}, "age"},
		{"age zero", userUC.CreateInput{Name: "A", Surname: "B", Age: 0}, "age"},
		{"empty name", userUC.CreateInput{Surname: "B", Age: 20}, "name"},
		{"long surname", userUC.CreateInput{Name: "A", Surname: strings.Repeat("а", 31), Age: 20}, "surname"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService()
			_, err := svc.Create(context.Background(), tt.in)

			var ve *entity.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)

			n, _ := svc.Count(context.Background())
			assert.Zero(t, n, "failed create must not store anything")
		})
	}
}

func TestService_Get(t *testing.T) {
	svc := newService()

	_, err := svc.Get(context.Background(), 5)
	assert.ErrorIs(t, err, userUC.ErrUserNotFound)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.EqualError(t, err, "user not found")

	for _, id := range []int64{0, 100} {
		_, err := svc.Get(context.Background(), id)
		assert.ErrorIs(t, err, entity.ErrValidationFailed, "id=%d", id)
	}
}

func TestService_RepoErrorsAreWrapped(t *testing.T) {
	boom := errors.New("db down")
	svc := &userUC.Service{Repo: failingRepo{err: boom}}
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "list users")

	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, entity.ErrNotFound)

	_, err = svc.Create(ctx, userUC.CreateInput{Name: "A", Surname: "B", Age: 3})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "create user")

	_, err = svc.Count(ctx)
	assert.ErrorIs(t, err, boom)
}
