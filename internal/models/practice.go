package models

import (
	"time"

	"github.com/google/uuid"
)

// Practice is a doctor-owned place of business grouping purchasable services.
// BackendPracticeID and ContractAddress come from WalletDash at creation time.
type Practice struct {
	ID                uuid.UUID  `json:"id"`
	DoctorID          uuid.UUID  `json:"doctor_id"`
	WalletID          *uuid.UUID `json:"wallet_id,omitempty"`
	BackendPracticeID string     `json:"backend_practice_id"`
	Name              string     `json:"name"`
	Specialty         string     `json:"specialty"`
	Location          string     `json:"location"`
	ContractAddress   string     `json:"contract_address"`
	Active            bool       `json:"active"`
	CreatedAt         time.Time  `json:"created_at"`
}
