package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/codingtracker/backend/internal/user"
)

// SetupJWTMiddleware gates a route group behind a bearer token. A request
// with no Authorization header gets 403; a malformed, expired or badly
// signed token gets 401.
func SetupJWTMiddleware(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(user.JwtCustomClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return echo.NewHTTPError(http.StatusForbidden, "No token provided")
			}
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		},
	})
}

// CurrentUser returns the claims the JWT middleware stored on the context,
// or nil when the request never passed the gate.
func CurrentUser(c echo.Context) *user.JwtCustomClaims {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(*user.JwtCustomClaims)
	if !ok {
		return nil
	}
	return claims
}
