package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meditrip/backend/internal/http/dto"
	"github.com/meditrip/backend/internal/repositories"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	serviceRepo *repositories.ServiceRepo
	log         *zap.Logger
}

func NewCatalogHandler(serviceRepo *repositories.ServiceRepo, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{serviceRepo: serviceRepo, log: log}
}

// ListServices returns the public catalog of purchasable services with their
// practice and doctor attached.
// GET /catalog/services
func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	listings, err := h.serviceRepo.ListAvailable(c.Context(), limit, offset)
	if err != nil {
		h.log.Error("failed to list catalog", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: listings})
}
