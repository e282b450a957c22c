package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/meditrip/backend/internal/models"
	"github.com/meditrip/backend/internal/walletdash"
	"go.uber.org/zap"
)

type PracticeService struct {
	practices PracticeStore
	services  ServiceStore
	profiles  ProfileStore
	wallets   WalletStore
	gateway   WalletGateway
	audit     AuditStore
	log       *zap.Logger
}

func NewPracticeService(
	practices PracticeStore,
	services ServiceStore,
	profiles ProfileStore,
	wallets WalletStore,
	gateway WalletGateway,
	audit AuditStore,
	log *zap.Logger,
) *PracticeService {
	return &PracticeService{
		practices: practices,
		services:  services,
		profiles:  profiles,
		wallets:   wallets,
		gateway:   gateway,
		audit:     audit,
		log:       log,
	}
}

type CreatePracticeInput struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Location  string `json:"location"`
}

func (in *CreatePracticeInput) validate() error {
	if in.Name == "" {
		return &ValidationError{Field: "name"}
	}
	if in.Specialty == "" {
		return &ValidationError{Field: "specialty"}
	}
	if in.Location == "" {
		return &ValidationError{Field: "location"}
	}
	return nil
}

// CreatePractice registers a place of business on-chain via WalletDash and
// persists the resulting contract address. Doctor-only.
func (s *PracticeService) CreatePractice(ctx context.Context, doctorID uuid.UUID, in CreatePracticeInput) (*models.Practice, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	doctor, err := s.profiles.GetByID(ctx, doctorID)
	if err != nil {
		return nil, &NotFoundError{Resource: "profile", ID: doctorID.String()}
	}
	if doctor.UserType != models.UserTypeDoctor {
		return nil, fmt.Errorf("%w: only doctors can create practices", ErrForbidden)
	}

	resp, err := s.gateway.CreatePractice(ctx, walletdash.CreatePracticeRequest{
		UserID:    doctor.ID.String(),
		Name:      in.Name,
		Specialty: in.Specialty,
		Location:  in.Location,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWalletService, err)
	}

	practice := &models.Practice{
		DoctorID:          doctor.ID,
		BackendPracticeID: resp.ID,
		Name:              in.Name,
		Specialty:         in.Specialty,
		Location:          in.Location,
		ContractAddress:   resp.ContractAddress,
		Active:            resp.Active,
	}
	if wallet, err := s.wallets.GetByProfileID(ctx, doctor.ID); err == nil {
		practice.WalletID = &wallet.ID
	}

	if err := s.practices.Create(ctx, practice); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	_ = s.audit.Log(ctx, models.AuditLog{
		ActorProfile: &doctor.ID,
		ActorType:    "user",
		Action:       "practice_created",
		EntityType:   "practice",
		EntityID:     &practice.ID,
		Meta:         map[string]any{"name": in.Name, "contract_address": resp.ContractAddress},
	})

	return practice, nil
}

type CreateServiceInput struct {
	PracticeID  uuid.UUID `json:"practice_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceUSD    string    `json:"price_usd"`
}

func (in *CreateServiceInput) validate() error {
	if in.PracticeID == uuid.Nil {
		return &ValidationError{Field: "practice_id"}
	}
	if in.Name == "" {
		return &ValidationError{Field: "name"}
	}
	if in.PriceUSD == "" {
		return &ValidationError{Field: "price_usd"}
	}
	return nil
}

// CreateService adds a purchasable offering to one of the doctor's practices.
func (s *PracticeService) CreateService(ctx context.Context, doctorID uuid.UUID, in CreateServiceInput) (*models.Service, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	practice, err := s.practices.GetByID(ctx, in.PracticeID)
	if err != nil {
		return nil, &NotFoundError{Resource: "practice", ID: in.PracticeID.String()}
	}
	if practice.DoctorID != doctorID {
		return nil, fmt.Errorf("%w: practice belongs to another doctor", ErrForbidden)
	}

	resp, err := s.gateway.CreateService(ctx, walletdash.CreateServiceRequest{
		PracticeID:  practice.BackendPracticeID,
		Name:        in.Name,
		Description: in.Description,
		PriceUSD:    in.PriceUSD,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWalletService, err)
	}

	var description *string
	if in.Description != "" {
		description = &in.Description
	}
	service := &models.Service{
		DoctorID:               doctorID,
		PracticeID:             practice.ID,
		Name:                   in.Name,
		Description:            description,
		PriceUSD:               in.PriceUSD,
		BackendServiceID:       resp.ID,
		ServiceContractAddress: resp.ContractAddress,
		Active:                 resp.Active,
	}

	if err := s.services.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	_ = s.audit.Log(ctx, models.AuditLog{
		ActorProfile: &doctorID,
		ActorType:    "user",
		Action:       "service_created",
		EntityType:   "service",
		EntityID:     &service.ID,
		Meta:         map[string]any{"name": in.Name, "price_usd": in.PriceUSD},
	})

	return service, nil
}
