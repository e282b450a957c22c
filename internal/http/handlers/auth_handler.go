package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meditrip/backend/internal/auth"
	"github.com/meditrip/backend/internal/config"
	"github.com/meditrip/backend/internal/http/dto"
	"github.com/meditrip/backend/internal/services"
	"go.uber.org/zap"
)

type AuthHandler struct {
	registration *services.RegistrationService
	cfg          *config.Config
	log          *zap.Logger
}

func NewAuthHandler(registration *services.RegistrationService, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{registration: registration, cfg: cfg, log: log}
}

// Register creates a profile plus its custodial wallet and returns a session
// token.
// POST /auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	result, err := h.registration.Register(c.Context(), services.RegistrationForm{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Country:   req.Country,
		UserType:  req.UserType,
		Specialty: req.Specialty,
		City:      req.City,
		Bio:       req.Bio,
	})
	if err != nil {
		return respondServiceError(c, h.log, err)
	}

	token, err := auth.GenerateJWT(h.cfg.JWTSecret, result.Profile.ID, result.Profile.UserType, h.cfg.JWTExpiration)
	if err != nil {
		h.log.Error("failed to generate jwt", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		Token:   token,
		Profile: result.Profile,
		Wallet:  result.Wallet,
	})
}
