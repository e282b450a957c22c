package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/meditrip/backend/internal/events"
	"github.com/meditrip/backend/internal/models"
	"github.com/meditrip/backend/internal/walletdash"
	"go.uber.org/zap"
)

// RegistrationForm is the user-submitted signup form.
type RegistrationForm struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Country   string `json:"country"`
	UserType  string `json:"user_type"` // patient / doctor
	Specialty string `json:"specialty,omitempty"`
	City      string `json:"city,omitempty"`
	Bio       string `json:"bio,omitempty"`
}

// validate checks required fields, doctor-conditional ones included, and
// reports the first missing one. Runs before any I/O.
func (f *RegistrationForm) validate() error {
	checks := []struct {
		field string
		value string
	}{
		{"first_name", f.FirstName},
		{"last_name", f.LastName},
		{"email", f.Email},
		{"country", f.Country},
		{"user_type", f.UserType},
	}
	for _, c := range checks {
		if strings.TrimSpace(c.value) == "" {
			return &ValidationError{Field: c.field}
		}
	}
	if !models.IsValidUserType(f.UserType) {
		return &ValidationError{Field: "user_type"}
	}
	if f.UserType == models.UserTypeDoctor {
		if strings.TrimSpace(f.Specialty) == "" {
			return &ValidationError{Field: "specialty"}
		}
		if strings.TrimSpace(f.City) == "" {
			return &ValidationError{Field: "city"}
		}
	}
	return nil
}

// RegistrationResult is the composed outcome of a successful registration.
type RegistrationResult struct {
	Profile  *models.Profile                  `json:"profile"`
	Wallet   *models.Wallet                   `json:"wallet"`
	Raw      *walletdash.CreateWalletResponse `json:"raw_wallet_response"`
	UserType string                           `json:"user_type"`
	UserID   string                           `json:"user_id"`
}

type RegistrationService struct {
	profiles  ProfileStore
	wallets   WalletStore
	gateway   WalletGateway
	audit     AuditStore
	publisher events.Publisher
	log       *zap.Logger
}

func NewRegistrationService(
	profiles ProfileStore,
	wallets WalletStore,
	gateway WalletGateway,
	audit AuditStore,
	publisher events.Publisher,
	log *zap.Logger,
) *RegistrationService {
	return &RegistrationService{
		profiles:  profiles,
		wallets:   wallets,
		gateway:   gateway,
		audit:     audit,
		publisher: publisher,
		log:       log,
	}
}

// Register runs the signup flow: validate, create the profile, request a
// custodial wallet from WalletDash and persist it.
//
// If wallet creation fails the profile is kept with wallet_status=pending and
// the worker retries later; the call itself still returns the wallet error.
// The upstream flow dropped the profile on the floor instead.
func (s *RegistrationService) Register(ctx context.Context, form RegistrationForm) (*RegistrationResult, error) {
	if err := form.validate(); err != nil {
		return nil, err
	}

	// The profile id doubles as the external identity token: fresh per run,
	// so concurrent registrations can never collide on it.
	userID := uuid.New()
	holder := models.HolderTypeForUser(form.UserType)

	profile := &models.Profile{
		ID:                 userID,
		FirstName:          form.FirstName,
		LastName:           form.LastName,
		Email:              form.Email,
		UserType:           form.UserType,
		Country:            form.Country,
		BlockchainUserType: holder,
		WalletStatus:       models.WalletStatusPending,
	}

	var doctor *models.DoctorProfile
	if form.UserType == models.UserTypeDoctor {
		var bio *string
		if form.Bio != "" {
			bio = &form.Bio
		}
		doctor = &models.DoctorProfile{
			ID:                 userID,
			Specialty:          form.Specialty,
			Bio:                bio,
			Country:            form.Country,
			City:               form.City,
			VerificationStatus: "pending",
		}
	}

	if err := s.profiles.Create(ctx, profile, doctor); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProfileCreation, err)
	}

	_ = s.audit.Log(ctx, models.AuditLog{
		ActorProfile: &userID,
		ActorType:    "user",
		Action:       "profile_registered",
		EntityType:   "profile",
		EntityID:     &userID,
		Meta:         map[string]any{"user_type": form.UserType, "country": form.Country},
	})

	wallet, raw, err := s.provisionWallet(ctx, profile)
	if err != nil {
		s.log.Warn("wallet creation failed, profile left pending",
			zap.String("profile_id", userID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	return &RegistrationResult{
		Profile:  profile,
		Wallet:   wallet,
		Raw:      raw,
		UserType: form.UserType,
		UserID:   userID.String(),
	}, nil
}

// RetryWalletCreation re-runs wallet provisioning for a profile stuck in
// wallet_status=pending. Invoked by the worker sweep.
func (s *RegistrationService) RetryWalletCreation(ctx context.Context, profileID uuid.UUID) error {
	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return &NotFoundError{Resource: "profile", ID: profileID.String()}
	}
	if profile.WalletStatus != models.WalletStatusPending {
		return nil
	}
	_, _, err = s.provisionWallet(ctx, profile)
	return err
}

// provisionWallet requests a wallet for the profile's holder classification,
// persists it and marks the profile ready.
func (s *RegistrationService) provisionWallet(ctx context.Context, profile *models.Profile) (*models.Wallet, *walletdash.CreateWalletResponse, error) {
	resp, err := s.gateway.CreateWallet(ctx, walletdash.CreateWalletRequest{
		UserID:            profile.ID.String(),
		UserType:          profile.BlockchainUserType,
		FundingAmountSTRK: models.FundingAmountSTRK(profile.BlockchainUserType),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrWalletService, err)
	}

	wallet := &models.Wallet{
		ProfileID:              profile.ID,
		WalletAddress:          resp.WalletAddress,
		ClaimToken:             resp.ClaimToken,
		UserID:                 profile.ID.String(),
		UserType:               profile.BlockchainUserType,
		FundingAmountSTRK:      resp.FundingAmountSTRK,
		FundingTransactionHash: resp.FundingTransactionHash,
		ReadyForTransactions:   resp.ReadyForTransactions,
	}

	if err := s.wallets.Store(ctx, wallet); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	if err := s.profiles.SetWalletStatus(ctx, profile.ID, models.WalletStatusReady); err != nil {
		s.log.Warn("failed to mark profile wallet-ready", zap.Error(err))
	}
	profile.WalletStatus = models.WalletStatusReady

	_ = s.audit.Log(ctx, models.AuditLog{
		ActorProfile: &profile.ID,
		ActorType:    "system",
		Action:       "wallet_created",
		EntityType:   "wallet",
		EntityID:     &wallet.ID,
		Meta:         map[string]any{"wallet_address": wallet.WalletAddress, "user_type": wallet.UserType},
	})

	_ = s.publisher.Publish(ctx, events.StreamWallet, events.Event{
		Type: events.EventWalletReady,
		Payload: map[string]any{
			"profile_id":     profile.ID.String(),
			"wallet_address": wallet.WalletAddress,
		},
	})

	return wallet, resp, nil
}
