package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/internal/config"
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	app := fiber.New()
	s, deps := newTestServer(t)
	s.config = &config.Config{JWTSecret: "test-secret"}
	app.Post("/auth/register", s.Register)

	t.Run("Success", func(t *testing.T) {
		deps.userRepo.On("ExistsByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").
			Return(false, nil).Once()
		deps.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.User).ID = 1
			}).Return(nil).Once()

		body, _ := json.Marshal(map[string]string{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "password123",
		})
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result struct {
			Token string      `json:"token"`
			User  models.User `json:"user"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "alice", result.User.Username)

		parsed, err := jwt.Parse(result.Token, func(token *jwt.Token) (any, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, "1", claims["sub"])
		assert.Equal(t, "inkwell-api", claims["iss"])
	})

	t.Run("Duplicate", func(t *testing.T) {
		deps.userRepo.On("ExistsByUsernameOrEmail", mock.Anything, "alice", "other@example.com").
			Return(true, nil).Once()

		body, _ := json.Marshal(map[string]string{
			"username": "alice",
			"email":    "other@example.com",
			"password": "password123",
		})
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var result models.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "Username or email already exists", result.Error)
	})

	t.Run("Invalid Email", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{
			"username": "bob",
			"email":    "not-an-email",
			"password": "password123",
		})
		req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLogin(t *testing.T) {
	app := fiber.New()
	s, deps := newTestServer(t)
	s.config = &config.Config{JWTSecret: "test-secret"}
	app.Post("/auth/login", s.Login)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		deps.userRepo.On("GetByEmail", mock.Anything, "alice@example.com").
			Return(&models.User{ID: 1, Username: "alice", Email: "alice@example.com",
				Password: string(hash), IsActive: true}, nil).Once()

		body, _ := json.Marshal(map[string]string{
			"email":    "alice@example.com",
			"password": "password123",
		})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.NotEmpty(t, result.Token)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		deps.userRepo.On("GetByEmail", mock.Anything, "alice@example.com").
			Return(&models.User{ID: 1, Username: "alice", Email: "alice@example.com",
				Password: string(hash), IsActive: true}, nil).Once()

		body, _ := json.Marshal(map[string]string{
			"email":    "alice@example.com",
			"password": "wrong",
		})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		deps.userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").
			Return(nil, nil).Once()

		body, _ := json.Marshal(map[string]string{
			"email":    "nobody@example.com",
			"password": "password123",
		})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var result models.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.Equal(t, "Invalid credentials", result.Error)
	})
}
