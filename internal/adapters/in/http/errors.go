package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/generated/servers"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// NewErrorHandler renders every error returned by a handler as servers.Error.
//
// Mapping:
//   - errs.ErrObjectNotFound -> 404
//   - errs.ErrIllegalState -> 400
//   - errs.ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange -> 400
//   - *echo.HTTPError -> its own code
//   - anything else -> 500, logged, with a generic message
func NewErrorHandler(clock kernel.Clock, logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")

	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code, message := classify(err)
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "Request failed",
				"error", err,
				"method", ctx.Request().Method,
				"path", ctx.Request().URL.Path,
			)
		}

		if ctx.Request().Method == http.MethodHead {
			_ = ctx.NoContent(code)
			return
		}

		_ = ctx.JSON(code, servers.Error{
			Code:      code,
			Message:   message,
			Timestamp: clock.Now(),
			Path:      ctx.Request().URL.Path,
		})
	}
}

func classify(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, flatten(err)
	case errors.Is(err, errs.ErrIllegalState),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, flatten(err)
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// flatten joins the lines errors.Join produces.
func flatten(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}
