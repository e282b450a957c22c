package models

import (
	"time"

	"github.com/google/uuid"
)

// Purchase statuses
const (
	PurchaseStatusPending   = "pending"
	PurchaseStatusCompleted = "completed"
	PurchaseStatusFailed    = "failed"
)

// Valid status transitions: from -> []to
var ValidPurchaseTransitions = map[string][]string{
	PurchaseStatusPending:   {PurchaseStatusCompleted, PurchaseStatusFailed},
	PurchaseStatusCompleted: {},
	PurchaseStatusFailed:    {},
}

func IsValidPurchaseTransition(from, to string) bool {
	allowed, ok := ValidPurchaseTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// Purchase records a payment for a service. The STRK amount is split four ways
// by WalletDash; the split components are stored alongside the total.
type Purchase struct {
	ID                uuid.UUID `json:"id"`
	ServiceID         uuid.UUID `json:"service_id"`
	PatientID         uuid.UUID `json:"patient_id"`
	BackendPurchaseID string    `json:"backend_purchase_id"`
	TransactionHash   string    `json:"transaction_hash"`
	AmountUSD         float64   `json:"amount_usd"`
	AmountSTRK        float64   `json:"amount_strk"`
	MedicAmount       float64   `json:"medic_amount"`
	TreasuryAmount    float64   `json:"treasury_amount"`
	LiquidityAmount   float64   `json:"liquidity_amount"`
	RewardsAmount     float64   `json:"rewards_amount"`
	Status            string    `json:"status"`
	Completed         bool      `json:"completed"`
	CreatedAt         time.Time `json:"created_at"`
}
