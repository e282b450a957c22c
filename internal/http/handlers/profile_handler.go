package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meditrip/backend/internal/http/dto"
	"github.com/meditrip/backend/internal/middleware"
	"github.com/meditrip/backend/internal/models"
	"github.com/meditrip/backend/internal/repositories"
	"github.com/meditrip/backend/internal/walletdash"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileRepo  *repositories.ProfileRepo
	walletRepo   *repositories.WalletRepo
	purchaseRepo *repositories.PurchaseRepo
	walletdash   *walletdash.Client
	log          *zap.Logger
}

func NewProfileHandler(
	profileRepo *repositories.ProfileRepo,
	walletRepo *repositories.WalletRepo,
	purchaseRepo *repositories.PurchaseRepo,
	wd *walletdash.Client,
	log *zap.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		profileRepo:  profileRepo,
		walletRepo:   walletRepo,
		purchaseRepo: purchaseRepo,
		walletdash:   wd,
		log:          log,
	}
}

// GetMe returns the caller's profile, doctor extension included.
// GET /me
func (h *ProfileHandler) GetMe(c *fiber.Ctx) error {
	profileID := middleware.GetProfileID(c)
	profile, err := h.profileRepo.GetByID(c.Context(), profileID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "profile not found"})
	}

	data := fiber.Map{"profile": profile}
	if profile.UserType == models.UserTypeDoctor {
		if doctor, err := h.profileRepo.GetDoctorProfile(c.Context(), profileID); err == nil {
			data["doctor_profile"] = doctor
		}
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: data})
}

// UpdateOnboarding advances the onboarding wizard position.
// PATCH /me/onboarding
func (h *ProfileHandler) UpdateOnboarding(c *fiber.Ctx) error {
	var req dto.UpdateOnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}
	if req.Step < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "step must be non-negative", Field: "step"})
	}

	profileID := middleware.GetProfileID(c)
	if err := h.profileRepo.UpdateOnboarding(c.Context(), profileID, req.Step, req.Completed); err != nil {
		h.log.Error("failed to update onboarding", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true})
}

// GetWallet returns the caller's custodial wallet with the claim token the
// owner needs to take custody.
// GET /me/wallet
func (h *ProfileHandler) GetWallet(c *fiber.Ctx) error {
	profileID := middleware.GetProfileID(c)
	wallet, err := h.walletRepo.GetByProfileID(c.Context(), profileID)
	if err != nil {
		return c.JSON(dto.SuccessResponse{OK: true, Data: nil})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: fiber.Map{
		"wallet":      wallet,
		"claim_token": wallet.ClaimToken,
	}})
}

// GetClaimStatus passes the wallet's claim state through from WalletDash.
// GET /me/wallet/claim-status
func (h *ProfileHandler) GetClaimStatus(c *fiber.Ctx) error {
	profileID := middleware.GetProfileID(c)
	wallet, err := h.walletRepo.GetByProfileID(c.Context(), profileID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "wallet not found"})
	}

	status, err := h.walletdash.ClaimStatus(c.Context(), wallet.ClaimToken)
	if err != nil {
		h.log.Warn("claim status lookup failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: status})
}

// MyPurchases lists the caller's purchases, newest first.
// GET /me/purchases
func (h *ProfileHandler) MyPurchases(c *fiber.Ctx) error {
	profileID := middleware.GetProfileID(c)
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	purchases, err := h.purchaseRepo.ListByPatient(c.Context(), profileID, limit, offset)
	if err != nil {
		h.log.Error("failed to list purchases", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: purchases})
}
