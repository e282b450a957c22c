package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meditrip/backend/internal/http/dto"
	"github.com/meditrip/backend/internal/middleware"
	"github.com/meditrip/backend/internal/services"
	"go.uber.org/zap"
)

type PurchaseHandler struct {
	purchaseService *services.PurchaseService
	log             *zap.Logger
}

func NewPurchaseHandler(purchaseService *services.PurchaseService, log *zap.Logger) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService, log: log}
}

// Purchase pays for a service with the caller's custodial wallet.
// POST /services/:id/purchase
func (h *PurchaseHandler) Purchase(c *fiber.Ctx) error {
	serviceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid service id"})
	}

	result, err := h.purchaseService.Purchase(c.Context(), serviceID, middleware.GetProfileID(c))
	if err != nil {
		return respondServiceError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: result})
}
