package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meditrip/backend/internal/http/dto"
	"github.com/meditrip/backend/internal/walletdash"
	"go.uber.org/zap"
)

// StatusHandler exposes read-only pass-throughs to the WalletDash service.
type StatusHandler struct {
	walletdash *walletdash.Client
	log        *zap.Logger
}

func NewStatusHandler(wd *walletdash.Client, log *zap.Logger) *StatusHandler {
	return &StatusHandler{walletdash: wd, log: log}
}

// GET /status/walletdash
func (h *StatusHandler) WalletDashHealth(c *fiber.Ctx) error {
	health, err := h.walletdash.Health(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: health})
}

// GET /status/oracle
func (h *StatusHandler) OracleHealth(c *fiber.Ctx) error {
	health, err := h.walletdash.OracleHealth(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: health})
}

// GET /analytics/user-types
func (h *StatusHandler) UserTypeAnalytics(c *fiber.Ctx) error {
	analytics, err := h.walletdash.UserTypeAnalytics(c.Context())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: analytics})
}
