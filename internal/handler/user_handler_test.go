package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inventory_api/internal/middleware"
	"inventory_api/internal/model"
	"inventory_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubUserService struct {
	updateFn func(ctx context.Context, callerID, targetID int, name, username string) (*model.User, error)
}

func (s *stubUserService) UpdateUser(ctx context.Context, callerID, targetID int, name, username string) (*model.User, error) {
	return s.updateFn(ctx, callerID, targetID, name, username)
}

// authAs injects an authenticated user the way the JWT middleware would
func authAs(user *model.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.AuthUserKey, user)
		c.Next()
	}
}

func setupUserRouter(svc service.UserService, caller *model.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewUserHandler(svc, testLogger()).RegisterUserRoutes(router.Group(""), authAs(caller))
	return router
}

func TestUpdateUser(t *testing.T) {
	svc := &stubUserService{
		updateFn: func(_ context.Context, callerID, targetID int, name, username string) (*model.User, error) {
			return &model.User{ID: targetID, Name: name, Username: username}, nil
		},
	}
	router := setupUserRouter(svc, &model.User{ID: 1, Username: "a1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/1",
		strings.NewReader(`{"name":"Alice","username":"alice1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Alice"`)
	assert.Contains(t, w.Body.String(), `"username":"alice1"`)
}

func TestUpdateUser_NotOwner(t *testing.T) {
	svc := &stubUserService{
		updateFn: func(_ context.Context, callerID, targetID int, _, _ string) (*model.User, error) {
			return nil, service.ErrNotYourAccount
		},
	}
	router := setupUserRouter(svc, &model.User{ID: 2, Username: "b2"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/1",
		strings.NewReader(`{"name":"Mallory","username":"mallory"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized, this is not your account")
}

func TestUpdateUser_NotOwner_IncompleteBody(t *testing.T) {
	called := false
	svc := &stubUserService{
		updateFn: func(_ context.Context, _, _ int, _, _ string) (*model.User, error) {
			called = true
			return nil, nil
		},
	}
	router := setupUserRouter(svc, &model.User{ID: 2, Username: "b2"})

	// The ownership rejection wins even when the body would also fail validation
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/1",
		strings.NewReader(`{"name":"Mallory"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized, this is not your account")
	assert.False(t, called)
}

func TestUpdateUser_MissingFields(t *testing.T) {
	called := false
	svc := &stubUserService{
		updateFn: func(_ context.Context, _, _ int, _, _ string) (*model.User, error) {
			called = true
			return nil, nil
		},
	}
	router := setupUserRouter(svc, &model.User{ID: 1, Username: "a1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/1",
		strings.NewReader(`{"name":"Alice"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Name and username are required")
	assert.False(t, called)
}

func TestUpdateUser_InvalidID(t *testing.T) {
	svc := &stubUserService{}
	router := setupUserRouter(svc, &model.User{ID: 1, Username: "a1"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/users/abc",
		strings.NewReader(`{"name":"Alice","username":"alice1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
