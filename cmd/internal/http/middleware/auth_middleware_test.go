package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"goldcredit/cmd/internal/domain/entity"
	"goldcredit/cmd/internal/domain/sqlite"
	"goldcredit/cmd/internal/domain/sqlite/repository"
	"goldcredit/cmd/internal/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func newAuthTestServer(t *testing.T) (*echo.Echo, *repository.DefaultUserRepository) {
	t.Helper()

	db, err := sqlite.Init(":memory:")
	require.NoError(t, err)
	userRepo := repository.NewUserRepository(db)

	e := echo.New()
	auth := NewAuthMiddleware(&AuthMiddlewareConfig{
		UserRepo:  userRepo,
		JWTSecret: testSecret,
	})

	e.GET("/protected", func(c echo.Context) error {
		user, cerr := utils.GetUserFromContext(c)
		if cerr != nil {
			return c.JSON(cerr.Code(), cerr)
		}
		return c.String(http.StatusOK, user.Email)
	}, auth)

	e.GET("/admin", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, auth, AdminOnly)

	return e, userRepo
}

func request(e *echo.Echo, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e, userRepo := newAuthTestServer(t)

	user := &entity.User{Email: "jane@goldcreditsa.com.br", Name: "Jane", PasswordHash: "h", Active: true, CreatedAt: 1}
	require.NoError(t, userRepo.Save(user))

	token, err := utils.GenerateToken(testSecret, user)
	require.NoError(t, err)

	rec := request(e, token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jane@goldcreditsa.com.br", rec.Body.String())
}

func TestAuthMiddleware_MissingOrBadToken(t *testing.T) {
	e, _ := newAuthTestServer(t)

	assert.Equal(t, http.StatusUnauthorized, request(e, "").Code)
	assert.Equal(t, http.StatusUnauthorized, request(e, "garbage").Code)
}

func TestAuthMiddleware_DeactivatedUser(t *testing.T) {
	e, userRepo := newAuthTestServer(t)

	user := &entity.User{Email: "old@goldcreditsa.com.br", Name: "Old", PasswordHash: "h", Active: true, CreatedAt: 1}
	require.NoError(t, userRepo.Save(user))

	token, err := utils.GenerateToken(testSecret, user)
	require.NoError(t, err)

	// Token issued before the account was deactivated.
	user.Active = false
	require.NoError(t, userRepo.Save(user))

	assert.Equal(t, http.StatusUnauthorized, request(e, token).Code)
}

func TestAdminOnly(t *testing.T) {
	e, userRepo := newAuthTestServer(t)

	regular := &entity.User{Email: "jane@goldcreditsa.com.br", Name: "Jane", PasswordHash: "h", Active: true, CreatedAt: 1}
	admin := &entity.User{Email: "admin@goldcreditsa.com.br", Name: "Admin", PasswordHash: "h", IsAdmin: true, Active: true, CreatedAt: 1}
	require.NoError(t, userRepo.Save(regular))
	require.NoError(t, userRepo.Save(admin))

	adminRequest := func(user *entity.User) int {
		token, err := utils.GenerateToken(testSecret, user)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusForbidden, adminRequest(regular))
	assert.Equal(t, http.StatusOK, adminRequest(admin))
}
