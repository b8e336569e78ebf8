package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskmate/taskmate-api/internal/api/middleware"
)

// principalID extracts the authenticated user id injected by the Auth
// middleware. Its presence proves the middleware ran; a handler reached
// without it rejects immediately rather than trusting the route table.
func principalID(c echo.Context) (int64, error) {
	id, ok := c.Get(middleware.CtxUserID).(int64)
	if !ok || id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
