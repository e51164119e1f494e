package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory_api/internal/model"
	"inventory_api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	user *model.User
}

func (r *stubUserRepo) Create(context.Context, *model.User) error { return nil }
func (r *stubUserRepo) FindByUsername(context.Context, string) (*model.User, error) {
	return nil, nil
}
func (r *stubUserRepo) FindByID(context.Context, int) (*model.User, error) {
	return r.user, nil
}
func (r *stubUserRepo) Update(context.Context, *model.User) error { return nil }

func setupRouter(jwtUtil *utils.JWTUtil, repo *stubUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", JWTAuthMiddleware(jwtUtil, repo), func(c *gin.Context) {
		user := c.MustGet(AuthUserKey).(*model.User)
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	})
	return router
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	router := setupRouter(utils.NewJWTUtil("secret", 10), &stubUserRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Access denied, token required")
}

func TestJWTAuthMiddleware_NotBearer(t *testing.T) {
	router := setupRouter(utils.NewJWTUtil("secret", 10), &stubUserRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMiddleware_InvalidToken(t *testing.T) {
	router := setupRouter(utils.NewJWTUtil("secret", 10), &stubUserRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", -1)
	router := setupRouter(jwtUtil, &stubUserRepo{user: &model.User{ID: 1}})

	token, err := jwtUtil.GenerateToken(1, "a1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestJWTAuthMiddleware_UserGone(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 10)
	router := setupRouter(jwtUtil, &stubUserRepo{user: nil})

	token, err := jwtUtil.GenerateToken(1, "a1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	jwtUtil := utils.NewJWTUtil("secret", 10)
	router := setupRouter(jwtUtil, &stubUserRepo{user: &model.User{ID: 7, Username: "a1"}})

	token, err := jwtUtil.GenerateToken(7, "a1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":7`)
}
