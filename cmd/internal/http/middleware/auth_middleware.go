package middleware

import (
	"net/http"

	"goldcredit/cmd/internal/domain/entity"
	"goldcredit/cmd/internal/utils"
	"goldcredit/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UserRepository interface {
	FindActiveByID(id int64) (*entity.User, error)
}

type AuthMiddlewareConfig struct {
	UserRepo  UserRepository
	JWTSecret []byte
}

// NewAuthMiddleware creates the handler with dependencies injected
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenData, err := utils.ParseTokenDataCtx(cfg.JWTSecret, c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			user, err := cfg.UserRepo.FindActiveByID(tokenData.UserID)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			if user == nil {
				// User deleted or deactivated but still holds a valid token
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			c.Set("user", user)
			return next(c)
		}
	}
}

// AdminOnly guards routes that mutate the store wholesale, like backup
// restores and spreadsheet imports. It must run after the auth
// middleware.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, cerr := utils.GetUserFromContext(c)
		if cerr != nil {
			return c.JSON(cerr.Code(), cerr)
		}

		if !user.IsAdmin {
			return c.JSON(http.StatusForbidden, apierror.AdminOnlyError)
		}
		return next(c)
	}
}
