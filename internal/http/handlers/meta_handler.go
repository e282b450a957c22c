package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meditrip/backend/internal/http/dto"
)

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

type MetaSpecialty struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type MetaCountry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var predefinedSpecialties = []MetaSpecialty{
	{ID: "dentistry", Label: "Dentistry"},
	{ID: "cardiology", Label: "Cardiology"},
	{ID: "orthopedics", Label: "Orthopedics"},
	{ID: "dermatology", Label: "Dermatology"},
	{ID: "ophthalmology", Label: "Ophthalmology"},
	{ID: "plastic_surgery", Label: "Plastic Surgery"},
	{ID: "fertility", Label: "Fertility & IVF"},
	{ID: "oncology", Label: "Oncology"},
	{ID: "neurology", Label: "Neurology"},
	{ID: "bariatric_surgery", Label: "Bariatric Surgery"},
	{ID: "hair_restoration", Label: "Hair Restoration"},
	{ID: "general_checkup", Label: "General Check-up"},
	{ID: "other", Label: "Other"},
}

var predefinedCountries = []MetaCountry{
	{ID: "TUR", Label: "Türkiye"},
	{ID: "THA", Label: "Thailand"},
	{ID: "MEX", Label: "Mexico"},
	{ID: "IND", Label: "India"},
	{ID: "HUN", Label: "Hungary"},
	{ID: "CRI", Label: "Costa Rica"},
	{ID: "COL", Label: "Colombia"},
	{ID: "MYS", Label: "Malaysia"},
	{ID: "KOR", Label: "South Korea"},
	{ID: "BRA", Label: "Brazil"},
	{ID: "USA", Label: "United States"},
	{ID: "other", Label: "Other"},
}

func (h *MetaHandler) GetSpecialties(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: predefinedSpecialties})
}

func (h *MetaHandler) GetCountries(c *fiber.Ctx) error {
	return c.JSON(dto.SuccessResponse{OK: true, Data: predefinedCountries})
}
