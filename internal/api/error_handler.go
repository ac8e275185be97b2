package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/internship/user-service/internal/api/handler"
	"github.com/internship/user-service/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain errors to their HTTP status codes (404/409/403/401).
//   - Renders validation failures as 400 with a per-field errors list.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders the fixed envelope {timestamp, status, error, message, path, errors?}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, msg, fields := resolveError(err, log, c)
		body := handler.APIError{
			Timestamp: time.Now().UTC(),
			Status:    status,
			Error:     http.StatusText(status),
			Message:   msg,
			Path:      c.Request().URL.Path,
			Errors:    fields,
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, []string) {
	// Echo's own errors (bind failures, 404 from router, middleware 401s).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), nil
	}

	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, "Validation error", ve.Fields
	}

	// Domain errors carry their own client-facing messages.
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound, nf.Message, nil
	}
	var ae *domain.AlreadyExistsError
	if errors.As(err, &ae) {
		return http.StatusConflict, ae.Message, nil
	}
	var ad *domain.AccessDeniedError
	if errors.As(err, &ad) {
		return http.StatusForbidden, ad.Message, nil
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		return http.StatusUnauthorized, err.Error(), nil
	}

	// Unexpected error (storage, cache): log the real cause, return a
	// generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error", nil
}
