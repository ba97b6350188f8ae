package repository

import (
	"testing"

	"github.com/adventboard/backend/internal/entity"
	"github.com/adventboard/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_userRepository(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	repo := NewUserRepository()

	u, err := repo.GetByEmail(ctx, testutil.User1.Email)
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, u.ID)
	require.Equal(t, entity.RoleUser, u.Role())

	err = repo.Create(ctx, &entity.User{Email: testutil.User1.Email, PasswordHash: "x"})
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	require.NoError(t, repo.UpdateByID(ctx, u.ID, &entity.User{IsAdmin: true}))
	u, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, entity.RoleAdmin, u.Role())
	require.NotEmpty(t, u.PasswordHash)

	_, err = repo.GetByEmail(ctx, "nobody@adventboard.dev")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
