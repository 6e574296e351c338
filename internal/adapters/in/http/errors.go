package http

import (
	"errors"
	"net/http"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

// fail maps a use case error onto a status code. Validation and lookup failures echo their
// message back; anything else is logged and reported generically.
func (s *Server) fail(ctx echo.Context, operation string, err error) error {
	code := statusOf(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), operation+" failed", "error", err)
		message = operation + " failed"
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrDeletionNotConfirmed):
		return http.StatusConflict
	case errors.Is(err, ports.ErrExtractionFailed):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func errImageTooLarge(size int64) error {
	return errs.NewValueIsOutOfRangeError("receipt image size", size, 1, commands.MaxReceiptImageBytes)
}
