package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pingly/errors"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(setupBadger(t))

	id, err := repo.CreateUser("test@example.com", "testuser", "$argon2id$fakehash")
	req.NoError(err)
	req.NotEmpty(id)

	user, err := repo.GetUserByEmail("test@example.com")
	req.NoError(err)
	req.Equal(id, user.ID)
	req.Equal("test@example.com", user.Email)
	req.Equal("testuser", user.Username)
	req.Equal("$argon2id$fakehash", user.PasswordHash)
	req.Equal([]string{"user"}, user.Roles)
	req.False(user.CreatedAt.IsZero())
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(setupBadger(t))

	_, err := repo.CreateUser("dup@example.com", "first", "hash1")
	req.NoError(err)

	_, err = repo.CreateUser("dup@example.com", "second", "hash2")
	req.ErrorIs(err, errors.ErrUserAlreadyExists)

	// The original account is untouched
	user, err := repo.GetUserByEmail("dup@example.com")
	req.NoError(err)
	req.Equal("first", user.Username)
}

func TestUserRepository_GetUnknownEmail(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(setupBadger(t))

	_, err := repo.GetUserByEmail("nobody@example.com")
	req.Error(err)
}
