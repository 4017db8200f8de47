package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/inkleapp/inkle-backend/internal/dto"
	"github.com/inkleapp/inkle-backend/internal/services"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Business-rule outcomes carry their message through; anything else is a
// persistence failure and gets a generic 500 so storage details never leak.
func respondServiceError(c *fiber.Ctx, err error) error {
	if services.IsPersistenceError(err) {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, services.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrAlreadyExists),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken):
		status = fiber.StatusConflict
	case errors.Is(err, services.ErrSelfRelation),
		errors.Is(err, services.ErrPrecondition):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrBlocked),
		errors.Is(err, services.ErrInsufficientPrivilege):
		status = fiber.StatusForbidden
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		status = fiber.StatusUnauthorized
	}

	return c.Status(status).JSON(dto.ErrorResponse{
		Error: true, Message: err.Error(),
	})
}
