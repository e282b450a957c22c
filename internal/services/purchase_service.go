package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/meditrip/backend/internal/events"
	"github.com/meditrip/backend/internal/models"
	"github.com/meditrip/backend/internal/walletdash"
	"go.uber.org/zap"
)

// PurchaseResult pairs the persisted purchase with the raw payment split for
// display.
type PurchaseResult struct {
	Purchase *models.Purchase        `json:"purchase"`
	Split    walletdash.PaymentSplit `json:"payment_split"`
}

type PurchaseService struct {
	services  ServiceStore
	profiles  ProfileStore
	purchases PurchaseStore
	gateway   WalletGateway
	audit     AuditStore
	publisher events.Publisher
	log       *zap.Logger
}

func NewPurchaseService(
	services ServiceStore,
	profiles ProfileStore,
	purchases PurchaseStore,
	gateway WalletGateway,
	audit AuditStore,
	publisher events.Publisher,
	log *zap.Logger,
) *PurchaseService {
	return &PurchaseService{
		services:  services,
		profiles:  profiles,
		purchases: purchases,
		gateway:   gateway,
		audit:     audit,
		publisher: publisher,
		log:       log,
	}
}

// Purchase pays for a service on behalf of the buyer and records the outcome.
// There is no idempotency key: repeated calls with the same arguments create
// independent purchase records. No availability check is made either; a
// service can be bought any number of times.
func (s *PurchaseService) Purchase(ctx context.Context, serviceID, buyerID uuid.UUID) (*PurchaseResult, error) {
	svc, err := s.services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, &NotFoundError{Resource: "service", ID: serviceID.String()}
	}

	buyer, err := s.profiles.GetByID(ctx, buyerID)
	if err != nil {
		return nil, &NotFoundError{Resource: "profile", ID: buyerID.String()}
	}

	resp, err := s.gateway.PurchaseService(ctx, walletdash.PurchaseServiceRequest{
		ServiceID:   svc.BackendServiceID,
		BuyerUserID: buyer.ID.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWalletService, err)
	}

	status := models.PurchaseStatusPending
	if resp.Completed {
		status = models.PurchaseStatusCompleted
	}

	purchase := &models.Purchase{
		ServiceID:         svc.ID,
		PatientID:         buyer.ID,
		BackendPurchaseID: resp.ID,
		TransactionHash:   resp.TransactionHash,
		AmountUSD:         resp.AmountUSD,
		AmountSTRK:        resp.AmountSTRK,
		MedicAmount:       resp.PaymentSplit.Medic,
		TreasuryAmount:    resp.PaymentSplit.Treasury,
		LiquidityAmount:   resp.PaymentSplit.Liquidity,
		RewardsAmount:     resp.PaymentSplit.Rewards,
		Status:            status,
		Completed:         resp.Completed,
	}

	if err := s.purchases.Create(ctx, purchase); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	_ = s.audit.Log(ctx, models.AuditLog{
		ActorProfile: &buyer.ID,
		ActorType:    "user",
		Action:       "service_purchased",
		EntityType:   "purchase",
		EntityID:     &purchase.ID,
		Meta: map[string]any{
			"service_id":  svc.ID.String(),
			"amount_usd":  resp.AmountUSD,
			"amount_strk": resp.AmountSTRK,
		},
	})

	_ = s.publisher.Publish(ctx, events.StreamPurchase, events.Event{
		Type: events.EventPurchaseCompleted,
		Payload: map[string]any{
			"purchase_id": purchase.ID.String(),
			"service_id":  svc.ID.String(),
			"patient_id":  buyer.ID.String(),
			"amount_strk": resp.AmountSTRK,
		},
	})

	s.log.Info("service purchased",
		zap.String("service_id", svc.ID.String()),
		zap.String("patient_id", buyer.ID.String()),
		zap.Float64("amount_strk", resp.AmountSTRK),
	)

	return &PurchaseResult{Purchase: purchase, Split: resp.PaymentSplit}, nil
}
