package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"travel-api/internal/domain/model"
)

// httpError maps a domain error onto the HTTP response. APIError carries its
// own status; anything else is an internal error.
func httpError(c echo.Context, err error) error {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		return c.JSON(apiErr.Status, map[string]string{"error": apiErr.Message})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
