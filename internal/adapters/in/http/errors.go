package http

import (
	"errors"
	"net/http"

	"eats/internal/generated/servers"
	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusCodeFor maps an error's kind to an HTTP status code. Handlers wrap
// every failure into one of the errs kinds, so unknown errors indicate a bug
// and map to 500.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse writes the error as a JSON Error body with the status code
// matching its kind.
func errorResponse(ctx echo.Context, err error) error {
	code := statusCodeFor(err)
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: err.Error(),
	})
}
