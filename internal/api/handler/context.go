package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// clientIDParam extracts the :id path parameter and fails fast on an empty
// value before any engine call.
func clientIDParam(c echo.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "missing client id")
	}
	return id, nil
}
