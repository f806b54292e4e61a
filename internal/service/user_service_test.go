package service

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	repo := noopUserRepo()
	var created *models.User
	repo.createFn = func(_ context.Context, user *models.User) error {
		user.ID = 1
		created = user
		return nil
	}

	svc := NewUserService(repo)
	user, err := svc.Register(context.Background(), RegisterInput{
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "Password123",
	})
	require.NoError(t, err)
	assert.Equal(t, created, user)
	assert.True(t, user.IsActive)
	// Stored as a bcrypt hash, never plaintext.
	assert.NotEqual(t, "Password123", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("Password123")))
}

func TestUserService_Register_Validation(t *testing.T) {
	t.Parallel()

	svc := NewUserService(noopUserRepo())
	ctx := context.Background()

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{"short username", RegisterInput{Username: "ab", Email: "a@b.com", Password: "Password123"}},
		{"bad email", RegisterInput{Username: "johndoe", Email: "not-an-email", Password: "Password123"}},
		{"weak password", RegisterInput{Username: "johndoe", Email: "john@example.com", Password: "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.input)
			assertValidationError(t, err)
		})
	}
}

func TestUserService_Register_Conflict(t *testing.T) {
	t.Parallel()

	repo := noopUserRepo()
	repo.existsByUsernameOrEmailFn = func(_ context.Context, _, _ string) (bool, error) {
		return true, nil
	}

	svc := NewUserService(repo)
	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "Password123",
	})
	assertConflictError(t, err)
	// The message must not leak which field collided.
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Username or email already exists", appErr.Message)
}

func TestUserService_Authenticate(t *testing.T) {
	t.Parallel()

	hashed, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.MinCost)
	require.NoError(t, err)

	newRepo := func(user *models.User) *userRepoStub {
		repo := noopUserRepo()
		repo.getByEmailFn = func(_ context.Context, _ string) (*models.User, error) {
			return user, nil
		}
		return repo
	}

	t.Run("valid credentials", func(t *testing.T) {
		svc := NewUserService(newRepo(&models.User{ID: 1, Password: string(hashed), IsActive: true}))
		user, err := svc.Authenticate(context.Background(), LoginInput{Email: "a@b.com", Password: "Password123"})
		require.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := NewUserService(newRepo(&models.User{ID: 1, Password: string(hashed), IsActive: true}))
		_, err := svc.Authenticate(context.Background(), LoginInput{Email: "a@b.com", Password: "Wrong123"})
		assertAppError(t, err, models.CodeUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc := NewUserService(newRepo(nil))
		_, err := svc.Authenticate(context.Background(), LoginInput{Email: "a@b.com", Password: "Password123"})
		assertAppError(t, err, models.CodeUnauthorized)
	})

	t.Run("inactive account", func(t *testing.T) {
		svc := NewUserService(newRepo(&models.User{ID: 1, Password: string(hashed), IsActive: false}))
		_, err := svc.Authenticate(context.Background(), LoginInput{Email: "a@b.com", Password: "Password123"})
		assertAppError(t, err, models.CodeUnauthorized)
	})
}

func TestUserService_UpdateUser_SelfOnly(t *testing.T) {
	t.Parallel()

	svc := NewUserService(noopUserRepo())
	bio := "about me"
	_, err := svc.UpdateUser(context.Background(), UpdateUserInput{
		UserID:   1,
		TargetID: 2,
		Bio:      &bio,
	})
	assertForbiddenError(t, err)
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Parallel()

	repo := noopUserRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "johndoe", FirstName: "John"}, nil
	}
	var saved *models.User
	repo.updateFn = func(_ context.Context, user *models.User) error {
		saved = user
		return nil
	}

	svc := NewUserService(repo)
	bio := "Gopher"
	user, err := svc.UpdateUser(context.Background(), UpdateUserInput{
		UserID:   1,
		TargetID: 1,
		Bio:      &bio,
	})
	require.NoError(t, err)
	assert.Equal(t, "Gopher", saved.Bio)
	// Untouched fields survive.
	assert.Equal(t, "John", user.FirstName)
}
