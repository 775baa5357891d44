package middleware

import (
	"net/http"

	"campus-events/internal/dto"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every failure in the uniform API shape
// {"success": false, "message": "..."} while keeping the HTTP status code
// the handler chose.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	_ = c.JSON(code, dto.MessageResponse{Success: false, Message: msg})
}
