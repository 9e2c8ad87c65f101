package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/food-delivery-service/internal/entities"
	"github.com/SergeyBogomolovv/food-delivery-service/internal/routing"
	"github.com/SergeyBogomolovv/food-delivery-service/pkg/idempotency"
	"github.com/SergeyBogomolovv/food-delivery-service/pkg/utils"
)

// StatusOf maps a service error onto an HTTP status.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, entities.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrUnauthorized), errors.Is(err, entities.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, entities.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrAddressNotFound),
		errors.Is(err, entities.ErrUserNotFound),
		errors.Is(err, routing.ErrNoRoute):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrInvalidTransition),
		errors.Is(err, entities.ErrEmailTaken),
		errors.Is(err, idempotency.ErrInProgress):
		return http.StatusConflict
	case errors.Is(err, entities.ErrAddressNotGeocoded):
		return http.StatusUnprocessableEntity
	case errors.Is(err, routing.ErrUpstream):
		return http.StatusBadGateway
	case errors.Is(err, entities.ErrStore):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func messageOf(err error, code int) string {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		return "order not found"
	case errors.Is(err, entities.ErrAddressNotFound):
		return "address not found"
	case errors.Is(err, entities.ErrUserNotFound):
		return "user not found"
	case errors.Is(err, routing.ErrNoRoute):
		return "route not found"
	case errors.Is(err, entities.ErrInvalidTransition):
		return "order is not in the expected state"
	case errors.Is(err, entities.ErrEmailTaken):
		return "email is already registered"
	case errors.Is(err, entities.ErrInvalidCredentials):
		return "invalid email or password"
	case errors.Is(err, entities.ErrAddressNotGeocoded):
		return "address could not be located"
	case errors.Is(err, idempotency.ErrInProgress):
		return "request is already in progress"
	}
	switch code {
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusBadGateway:
		return "routing service unavailable"
	case http.StatusServiceUnavailable:
		return "storage unavailable"
	}
	return "internal server error"
}

// writeServiceError answers with the status of err. Server side failures are
// logged with op.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, op string, err error) {
	code := StatusOf(err)
	if code == http.StatusBadRequest {
		utils.WriteValidationError(w, err)
		return
	}
	if code >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, "failed to "+op, slog.Any("error", err))
	}
	utils.WriteError(w, messageOf(err, code), code)
}
