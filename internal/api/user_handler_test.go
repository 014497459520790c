package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursetrack/coursetrack-api/internal/domain"
	"github.com/coursetrack/coursetrack-api/internal/mocks"
	"github.com/coursetrack/coursetrack-api/internal/service"
)

func newUserRouter(t *testing.T) (http.Handler, service.UserService) {
	t.Helper()

	users := service.NewUserService(mocks.NewMockUserStore(), nil)
	handler := NewUserHandler(users, nil)

	r := newTestRouter()
	r.Post("/signup", handler.Signup)
	r.Post("/login", handler.Login)
	return r, users
}

func TestUserHandler_Signup(t *testing.T) {
	t.Parallel()

	t.Run("creates account", func(t *testing.T) {
		t.Parallel()

		router, _ := newUserRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/signup", SignupRequest{
			Email:    "test@example.com",
			Password: "password123",
			Name:     "Test User",
		})

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotZero(t, resp.UserID)
		assert.Equal(t, "test@example.com", resp.Email)
		assert.Equal(t, domain.RoleLearner, resp.Role)
	})

	t.Run("duplicate email reports validation error", func(t *testing.T) {
		t.Parallel()

		router, _ := newUserRouter(t)

		body := SignupRequest{Email: "test@example.com", Password: "password123", Name: "Test"}
		require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/signup", body).Code)

		rec := doJSON(t, router, http.MethodPost, "/signup", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeErrorResponse(t, rec)
		assert.Equal(t, CodeValidation, resp.Code)
		assert.Equal(t, "Email already registered", resp.Message)
	})

	t.Run("rejects short password", func(t *testing.T) {
		t.Parallel()

		router, _ := newUserRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/signup", SignupRequest{
			Email:    "test@example.com",
			Password: "short",
			Name:     "Test",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, CodeValidation, decodeErrorResponse(t, rec).Code)
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		t.Parallel()

		router, _ := newUserRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/signup", "not an object")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Parallel()

	signup := SignupRequest{Email: "test@example.com", Password: "password123", Name: "Test"}

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()

		router, _ := newUserRouter(t)
		require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/signup", signup).Code)

		rec := doJSON(t, router, http.MethodPost, "/login", LoginRequest{
			Email:    "test@example.com",
			Password: "password123",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "test@example.com", resp.Email)
	})

	t.Run("wrong password returns 401 with opaque message", func(t *testing.T) {
		t.Parallel()

		router, _ := newUserRouter(t)
		require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/signup", signup).Code)

		rec := doJSON(t, router, http.MethodPost, "/login", LoginRequest{
			Email:    "test@example.com",
			Password: "wrongpassword",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)

		resp := decodeErrorResponse(t, rec)
		assert.Equal(t, CodeUnauthorized, resp.Code)
		assert.Equal(t, "Invalid credentials", resp.Message)
	})

	t.Run("unknown email returns the same error", func(t *testing.T) {
		t.Parallel()

		router, _ := newUserRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/login", LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", decodeErrorResponse(t, rec).Message)
	})
}

func TestUserHandler_Me(t *testing.T) {
	t.Parallel()

	users := service.NewUserService(mocks.NewMockUserStore(), nil)
	created, err := users.SignUp(context.Background(), "test@example.com", "password123", "", "Test User", "")
	require.NoError(t, err)

	handler := NewUserHandler(users, nil)
	r := newTestRouter(withActor(domain.Actor{UserID: created.ID, Role: domain.RoleLearner}))
	r.Get("/me", handler.Me)

	rec := doJSON(t, r, http.MethodGet, "/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, created.ID, resp.UserID)
	assert.Equal(t, "Test User", resp.Name)
}
