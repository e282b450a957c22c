package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/meditrip/backend/internal/http/dto"
	"github.com/meditrip/backend/internal/services"
	"go.uber.org/zap"
)

// respondServiceError maps a service failure onto an HTTP response.
func respondServiceError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: validationErr.Error(),
			Field: validationErr.Field,
		})
	}

	var notFoundErr *services.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: notFoundErr.Error()})
	}

	switch {
	case errors.Is(err, services.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrWalletService):
		log.Warn("wallet service failure", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: err.Error()})
	default:
		log.Error("internal error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}
}
