package http

import (
	"errors"
	"net/http"

	"fishmarket/internal/core/application/usecases/commands"
	"fishmarket/internal/core/application/usecases/queries"
	"fishmarket/internal/core/domain/model/cart"
	"fishmarket/internal/core/domain/model/order"
	"fishmarket/internal/core/ports"
	"fishmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps domain and application errors to HTTP statuses.
// Lifecycle conflicts (bad transition, wrong code, stale write) are 409 so
// clients can distinguish "re-read and retry" from plain bad input.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrVerificationMismatch),
		errors.Is(err, order.ErrMissingVerificationCode),
		errors.Is(err, commands.ErrCancellationNotAllowed),
		errors.Is(err, ports.ErrConcurrentModification):
		status = http.StatusConflict
	case errors.Is(err, cart.ErrBelowMinimumOrder),
		errors.Is(err, commands.ErrEmptyCart),
		errors.Is(err, commands.ErrInvalidDeliveryInfo),
		errors.Is(err, commands.ErrProductNotAvailable),
		errors.Is(err, queries.ErrUnknownReportPeriod),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
