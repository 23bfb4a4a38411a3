package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Response helpers shared by the API handlers.
func errorResponse(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"error": msg})
}

func badRequest(c echo.Context, msg string) error {
	return errorResponse(c, http.StatusBadRequest, msg)
}

func serverError(c echo.Context, msg string) error {
	return errorResponse(c, http.StatusInternalServerError, msg)
}

// stringField gets a string field from a decoded JSON body, coercing numbers
// that should be strings (callers send amount as either).
func stringField(body map[string]interface{}, key string) string {
	switch v := body[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
