package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codingtracker/backend/internal/apperrors"
)

// HTTPErrorHandler maps service errors onto JSON responses. AppError
// carries its own status; anything unrecognized becomes an opaque 500 so
// storage failures never leak internals to the client.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= http.StatusInternalServerError {
			c.Logger().Error(err)
		}
		_ = c.JSON(appErr.Code, echo.Map{"message": appErr.Message})
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, echo.Map{"message": fmt.Sprintf("%v", httpErr.Message)})
		return
	}

	c.Logger().Error(err)
	_ = c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
}
