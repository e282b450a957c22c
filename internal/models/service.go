package models

import (
	"time"

	"github.com/google/uuid"
)

// Service is a purchasable medical offering priced in USD.
type Service struct {
	ID                     uuid.UUID `json:"id"`
	DoctorID               uuid.UUID `json:"doctor_id"`
	PracticeID             uuid.UUID `json:"practice_id"`
	Name                   string    `json:"name"`
	Description            *string   `json:"description,omitempty"`
	PriceUSD               string    `json:"price_usd"` // numeric as string
	BackendServiceID       string    `json:"backend_service_id"`
	ServiceContractAddress string    `json:"service_contract_address"`
	Active                 bool      `json:"active"`
	CreatedAt              time.Time `json:"created_at"`
}

// ServiceListing embeds Service and adds practice/doctor info to avoid N+1 queries.
type ServiceListing struct {
	Service
	PracticeName      string  `json:"practice_name"`
	PracticeLocation  string  `json:"practice_location"`
	PracticeSpecialty string  `json:"practice_specialty"`
	DoctorFirstName   *string `json:"doctor_first_name,omitempty"`
	DoctorLastName    *string `json:"doctor_last_name,omitempty"`
}
