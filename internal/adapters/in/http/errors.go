package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusFor maps a use case error onto an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrUnknownCategory):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the mapped status. Client errors carry the error
// text; server errors only the fallback message.
func writeError(ctx echo.Context, err error, fallback string) error {
	status := StatusFor(err)
	message := fallback
	if status < http.StatusInternalServerError {
		message = err.Error()
	} else {
		ctx.Logger().Error(err)
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// ErrorHandler renders errors that escape the handlers, such as routing misses
// and parameter binding failures, in the same Error shape.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := http.StatusText(status)

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	} else {
		ctx.Logger().Error(err)
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(status)
		return
	}
	_ = ctx.JSON(status, Error{Code: status, Message: message})
}
