package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ctxCredentialsID extracts the credentials id injected by the Auth
// middleware. Presence proves the middleware ran; without it the request
// must not reach any service call.
func ctxCredentialsID(c echo.Context) (string, error) {
	id, _ := c.Get("credentials_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// queryIDs parses the comma-separated ids query parameter.
func queryIDs(c echo.Context) ([]string, error) {
	raw := c.QueryParam("ids")
	if raw == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "ids query parameter is required")
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	if len(ids) == 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "ids query parameter is required")
	}
	return ids, nil
}
