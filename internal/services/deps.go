package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/meditrip/backend/internal/models"
	"github.com/meditrip/backend/internal/walletdash"
)

// Store and gateway contracts consumed by the orchestration services. The
// repositories and the WalletDash client satisfy them; tests substitute fakes.

type ProfileStore interface {
	Create(ctx context.Context, p *models.Profile, d *models.DoctorProfile) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	SetWalletStatus(ctx context.Context, id uuid.UUID, status string) error
}

type WalletStore interface {
	Store(ctx context.Context, w *models.Wallet) error
	GetByProfileID(ctx context.Context, profileID uuid.UUID) (*models.Wallet, error)
}

type PracticeStore interface {
	Create(ctx context.Context, p *models.Practice) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Practice, error)
}

type ServiceStore interface {
	Create(ctx context.Context, s *models.Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Service, error)
}

type PurchaseStore interface {
	Create(ctx context.Context, p *models.Purchase) error
}

type AuditStore interface {
	Log(ctx context.Context, entry models.AuditLog) error
}

// WalletGateway is the slice of the WalletDash API the services drive.
type WalletGateway interface {
	CreateWallet(ctx context.Context, req walletdash.CreateWalletRequest) (*walletdash.CreateWalletResponse, error)
	CreatePractice(ctx context.Context, req walletdash.CreatePracticeRequest) (*walletdash.CreatePracticeResponse, error)
	CreateService(ctx context.Context, req walletdash.CreateServiceRequest) (*walletdash.CreateServiceResponse, error)
	PurchaseService(ctx context.Context, req walletdash.PurchaseServiceRequest) (*walletdash.PurchaseServiceResponse, error)
	ClaimStatus(ctx context.Context, claimToken string) (*walletdash.ClaimStatusResponse, error)
}
