package models

import (
	"time"

	"github.com/google/uuid"
)

// Wallet is a custodial blockchain account issued by WalletDash for a profile.
// It is held by the platform until the user claims it with the claim token.
type Wallet struct {
	ID                     uuid.UUID `json:"id"`
	ProfileID              uuid.UUID `json:"profile_id"`
	WalletAddress          string    `json:"wallet_address"`
	ClaimToken             string    `json:"-"` // never exposed in list responses
	UserID                 string    `json:"user_id"`   // identity token registered with WalletDash
	UserType               string    `json:"user_type"` // holder classification
	FundingAmountSTRK      string    `json:"funding_amount_strk"`
	FundingTransactionHash string    `json:"funding_transaction_hash"`
	ReadyForTransactions   bool      `json:"ready_for_transactions"`
	Claimed                bool      `json:"claimed"`
	CreatedAt              time.Time `json:"created_at"`
}
