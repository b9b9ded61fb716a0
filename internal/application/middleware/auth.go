package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"pesisir-api/internal/domain/usecase/auth"
	"pesisir-api/pkg/msg"
)

const userIDContextKey = "auth.userID"

// RequireToken guards a route group with bearer token authentication.
// The authenticated user ID becomes available through UserID.
func RequireToken(authUseCase auth.UseCase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": msg.GetMessage("auth.error.missing-token"),
				})
			}

			claims, err := authUseCase.ParseToken(token)
			if err != nil {
				return c.JSON(http.StatusForbidden, map[string]string{
					"error": msg.GetMessage("auth.error.invalid-token"),
				})
			}

			c.Set(userIDContextKey, claims.UserID)
			return next(c)
		}
	}
}

// UserID returns the user ID stored by RequireToken.
func UserID(c echo.Context) uint {
	if id, ok := c.Get(userIDContextKey).(uint); ok {
		return id
	}
	return 0
}
