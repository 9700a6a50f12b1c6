package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/poscentral/website-api/internal/core/domain"
)

// ctxActor extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a present, non-zero
// user id proves the middleware ran.
func ctxActor(c echo.Context) (userID uint, role string, err error) {
	userID, _ = c.Get("user_id").(uint)
	role, _ = c.Get("role").(string)
	if userID == 0 || role == "" {
		return 0, "", domain.ErrUnauthenticated
	}
	return userID, role, nil
}

// paramID parses the :id route parameter.
func paramID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
