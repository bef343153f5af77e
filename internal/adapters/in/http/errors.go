package http

import (
	"errors"
	"log/slog"
	"net/http"

	"tracking/internal/generated/servers"
	"tracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	msgForbidden    = "No tienes permiso para esta acción."
	msgNotFound     = "Recurso no encontrado."
	msgConflict     = "El recurso ya existe."
	msgInvalid      = "Solicitud inválida."
	msgInternal     = "Error interno del servidor."
	msgUnauthorized = "No autenticado."
)

// messages overrides the default error text per HTTP status.
type messages map[int]string

// statusFor maps the errs sentinels to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

var defaultMessages = map[int]string{
	http.StatusForbidden:           msgForbidden,
	http.StatusNotFound:            msgNotFound,
	http.StatusConflict:            msgConflict,
	http.StatusBadRequest:          msgInvalid,
	http.StatusInternalServerError: msgInternal,
}

// fail writes {"error": ...} for err. Unexpected errors are logged and
// answered with a generic 500.
func (s *Server) fail(c echo.Context, err error, overrides messages) error {
	status := statusFor(err)

	message, ok := overrides[status]
	if !ok {
		message = defaultMessages[status]
	}

	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
	}

	return c.JSON(status, servers.Error{Error: message})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, servers.Error{Error: message})
}

// ErrorHandler renders echo's own errors (routing, binding) as JSON.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := msgInternal

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		} else {
			logger.ErrorContext(c.Request().Context(), "Unhandled error", "path", c.Path(), "error", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, servers.Error{Error: message})
		}
		if err != nil {
			logger.ErrorContext(c.Request().Context(), "Failed to write error response", "error", err)
		}
	}
}
