package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/meditrip/backend/internal/http/dto"
	"github.com/meditrip/backend/internal/middleware"
	"github.com/meditrip/backend/internal/repositories"
	"github.com/meditrip/backend/internal/services"
	"go.uber.org/zap"
)

type PracticeHandler struct {
	practiceService *services.PracticeService
	practiceRepo    *repositories.PracticeRepo
	serviceRepo     *repositories.ServiceRepo
	log             *zap.Logger
}

func NewPracticeHandler(
	practiceService *services.PracticeService,
	practiceRepo *repositories.PracticeRepo,
	serviceRepo *repositories.ServiceRepo,
	log *zap.Logger,
) *PracticeHandler {
	return &PracticeHandler{
		practiceService: practiceService,
		practiceRepo:    practiceRepo,
		serviceRepo:     serviceRepo,
		log:             log,
	}
}

// CreatePractice registers a new practice for the calling doctor.
// POST /practices
func (h *PracticeHandler) CreatePractice(c *fiber.Ctx) error {
	var req dto.CreatePracticeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	practice, err := h.practiceService.CreatePractice(c.Context(), middleware.GetProfileID(c), services.CreatePracticeInput{
		Name:      req.Name,
		Specialty: req.Specialty,
		Location:  req.Location,
	})
	if err != nil {
		return respondServiceError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: practice})
}

// MyPractices lists the calling doctor's practices.
// GET /practices/my
func (h *PracticeHandler) MyPractices(c *fiber.Ctx) error {
	practices, err := h.practiceRepo.ListByDoctor(c.Context(), middleware.GetProfileID(c))
	if err != nil {
		h.log.Error("failed to list practices", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: practices})
}

// GetPracticeServices lists the active services of one practice.
// GET /practices/:id/services
func (h *PracticeHandler) GetPracticeServices(c *fiber.Ctx) error {
	practiceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid practice id"})
	}

	servicesList, err := h.serviceRepo.ListByPractice(c.Context(), practiceID)
	if err != nil {
		h.log.Error("failed to list practice services", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal server error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: servicesList})
}

// CreateService adds a purchasable service to one of the doctor's practices.
// POST /services
func (h *PracticeHandler) CreateService(c *fiber.Ctx) error {
	var req dto.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	practiceID, err := uuid.Parse(req.PracticeID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid practice id", Field: "practice_id"})
	}

	service, err := h.practiceService.CreateService(c.Context(), middleware.GetProfileID(c), services.CreateServiceInput{
		PracticeID:  practiceID,
		Name:        req.Name,
		Description: req.Description,
		PriceUSD:    req.PriceUSD,
	})
	if err != nil {
		return respondServiceError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: service})
}
