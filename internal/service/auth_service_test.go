package service_test

import (
	"context"
	"testing"
	"time"

	"sanam/my-workouts/internal/domain"
	"sanam/my-workouts/internal/repository"
	"sanam/my-workouts/internal/service"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserRepo is an in-memory repository.UserRepository with a unique
// email constraint, like the store's index provides.
type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.RepositoryError("duplicate email")
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	r.users[user.ID] = &stored
	return user.ID, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (r *fakeUserRepo) SetPhotoKey(_ context.Context, id primitive.ObjectID, photoKey string) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.PhotoKey = photoKey
	return nil
}

const (
	testSecret   = "test-secret"
	testPassword = "Password1"
)

func TestValidatePassword(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, service.ValidatePassword("Password1"))
	})

	t.Run("too short", func(t *testing.T) {
		err := service.ValidatePassword("Pass1")
		require.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("missing uppercase", func(t *testing.T) {
		err := service.ValidatePassword("password1")
		require.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("missing digit", func(t *testing.T) {
		err := service.ValidatePassword("Passwords")
		require.ErrorIs(t, err, service.ErrValidation)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	svc := service.NewAuthService(newFakeUserRepo(), testSecret, time.Hour)

	t.Run("successful registration", func(t *testing.T) {
		user, err := svc.Register(ctx, "Sanam Shrestha", "sanam@example.com", testPassword)
		require.NoError(t, err)
		require.Equal(t, "sanam@example.com", user.Email)
		require.Empty(t, user.PasswordHash, "hash must not leave the service")
		require.False(t, user.ID.IsZero())
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, "Someone Else", "sanam@example.com", testPassword)
		require.ErrorIs(t, err, service.ErrUserAlreadyExists)
	})

	t.Run("weak password rejected before any store call", func(t *testing.T) {
		_, err := svc.Register(ctx, "New User", "new@example.com", "weak")
		require.ErrorIs(t, err, service.ErrValidation)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := svc.Register(ctx, "", "new@example.com", testPassword)
		require.ErrorIs(t, err, service.ErrValidation)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc := service.NewAuthService(newFakeUserRepo(), testSecret, time.Hour)

	_, err := svc.Register(ctx, "Sanam Shrestha", "sanam@example.com", testPassword)
	require.NoError(t, err)

	t.Run("valid credentials yield a token", func(t *testing.T) {
		token, user, err := svc.Login(ctx, "sanam@example.com", testPassword)
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.Equal(t, "sanam@example.com", user.Email)
		require.Empty(t, user.PasswordHash)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "sanam@example.com", "Wrong1234")
		require.ErrorIs(t, err, service.ErrAuthenticationFailed)
	})

	t.Run("unknown email maps to the same auth failure", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody@example.com", testPassword)
		require.ErrorIs(t, err, service.ErrAuthenticationFailed)
	})

	t.Run("empty credentials", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "", "")
		require.ErrorIs(t, err, service.ErrAuthenticationFailed)
	})
}
