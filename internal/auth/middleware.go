package auth

import (
	"strings"

	"github.com/google/uuid"
	"github.com/jeonbyeongmin/canny-sub000/internal/apperr"
	"github.com/labstack/echo/v4"
)

const userIDKey = "auth.userID"

// Middleware verifies the bearer token and stores the caller's user id on
// the request context.
func Middleware(issuer *JWTIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return apperr.NewUnauthorized("missing authorization header")
			}

			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return apperr.NewUnauthorized("malformed authorization header")
			}

			userID, err := issuer.Verify(tokenStr)
			if err != nil {
				return apperr.NewUnauthorized("invalid or expired token")
			}

			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// UserID returns the authenticated caller's id set by Middleware.
func UserID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get(userIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, apperr.NewUnauthorized("not authenticated")
	}
	return id, nil
}
