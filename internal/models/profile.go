package models

import (
	"time"

	"github.com/google/uuid"
)

// User types
const (
	UserTypePatient = "patient"
	UserTypeDoctor  = "doctor"
)

// Wallet provisioning status of a profile. A profile is created before its
// custodial wallet exists; it stays pending until the wallet is persisted.
const (
	WalletStatusPending = "pending"
	WalletStatusReady   = "ready"
)

// Holder classifications used by the WalletDash service.
const (
	HolderIndividual = "Individual"
	HolderMedical    = "Medical"
	HolderFinance    = "Finance"
	HolderGaming     = "Gaming"
	HolderSocial     = "Social"
	HolderEnterprise = "Enterprise"
)

// Default funding in STRK per holder classification.
var holderFundingSTRK = map[string]int{
	HolderIndividual: 5,
	HolderMedical:    2,
	HolderFinance:    3,
	HolderGaming:     2,
	HolderSocial:     2,
	HolderEnterprise: 10,
}

func IsValidUserType(userType string) bool {
	return userType == UserTypePatient || userType == UserTypeDoctor
}

// HolderTypeForUser maps a local user type to the WalletDash holder classification.
func HolderTypeForUser(userType string) string {
	if userType == UserTypeDoctor {
		return HolderMedical
	}
	return HolderIndividual
}

// FundingAmountSTRK returns the default funding for a holder classification.
// Unknown classifications get the minimum funding of 2 STRK.
func FundingAmountSTRK(holderType string) int {
	if v, ok := holderFundingSTRK[holderType]; ok {
		return v
	}
	return 2
}

type Profile struct {
	ID                  uuid.UUID `json:"id"` // doubles as the external identity token sent to WalletDash
	FirstName           string    `json:"first_name"`
	LastName            string    `json:"last_name"`
	Email               string    `json:"email"`
	UserType            string    `json:"user_type"` // patient / doctor
	Country             string    `json:"country"`
	BlockchainUserType  string    `json:"blockchain_user_type"` // holder classification
	WalletStatus        string    `json:"wallet_status"`        // pending / ready
	OnboardingStep      int       `json:"onboarding_step"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	CreatedAt           time.Time `json:"created_at"`
}

// DoctorProfile extends a Profile with doctor-specific fields.
// Shares its id with the owning profile row.
type DoctorProfile struct {
	ID                 uuid.UUID `json:"id"`
	Specialty          string    `json:"specialty"`
	Bio                *string   `json:"bio,omitempty"`
	Country            string    `json:"country"`
	City               string    `json:"city"`
	VerificationStatus string    `json:"verification_status"` // pending / verified / rejected
}
