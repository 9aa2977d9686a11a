package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"constructmart/internal/generated/servers"
	"constructmart/internal/pkg/errs"
)

// respondError maps a domain error to its HTTP status in one place so every
// handler fails the same way.
func respondError(ctx echo.Context, err error) error {
	var insufficientStock *errs.InsufficientStockError
	if errors.As(err, &insufficientStock) {
		details := make([]servers.StockShortage, 0, len(insufficientStock.Shortages))
		for _, shortage := range insufficientStock.Shortages {
			details = append(details, servers.StockShortage{
				ProductId: shortage.ProductID,
				Requested: shortage.Requested,
				Available: shortage.Available,
			})
		}
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
			Details: &details,
		})
	}

	status := statusFor(err)
	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: messageFor(status, err),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrMinimumOrderNotMet):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// messageFor hides internal detail on 500s; everything else is a domain error
// message safe to show the client.
func messageFor(status int, err error) string {
	if status == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}

// respondBadRequestBody reports an unparsable request body.
func respondBadRequestBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "invalid request body",
	})
}
