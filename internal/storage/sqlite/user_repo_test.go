package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsedeck-server/internal/domain"
	"pulsedeck-server/internal/logger"
)

func testRepo(t *testing.T) *UserRepository {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewUserRepository(db)
}

func TestCreateAndGetUser(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	user := &domain.User{Email: "admin@example.com", Password: "hashed"}
	require.NoError(t, repo.CreateUser(ctx, user))
	assert.NotZero(t, user.ID)

	got, err := repo.GetUserByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "hashed", got.Password)
}

func TestGetUserByEmailNotFound(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.GetUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, &domain.User{Email: "a@b.c", Password: "x"}))
	assert.Error(t, repo.CreateUser(ctx, &domain.User{Email: "a@b.c", Password: "y"}))
}

func TestCountUsers(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	count, err := repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.CreateUser(ctx, &domain.User{Email: "a@b.c", Password: "x"}))

	count, err = repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
