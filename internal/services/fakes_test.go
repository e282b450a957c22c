package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/meditrip/backend/internal/events"
	"github.com/meditrip/backend/internal/models"
	"github.com/meditrip/backend/internal/walletdash"
)

var errNoRows = errors.New("no rows in result set")

type fakeProfileStore struct {
	createCalls    int
	setStatusCalls int
	createErr      error

	profiles map[uuid.UUID]*models.Profile
	doctors  map[uuid.UUID]*models.DoctorProfile
}

func newFakeProfileStore() *fakeProfileStore {
	return &fakeProfileStore{
		profiles: make(map[uuid.UUID]*models.Profile),
		doctors:  make(map[uuid.UUID]*models.DoctorProfile),
	}
}

func (f *fakeProfileStore) Create(_ context.Context, p *models.Profile, d *models.DoctorProfile) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	p.CreatedAt = time.Now()
	cp := *p
	f.profiles[p.ID] = &cp
	if d != nil {
		cd := *d
		f.doctors[d.ID] = &cd
	}
	return nil
}

func (f *fakeProfileStore) GetByID(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, errNoRows
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileStore) SetWalletStatus(_ context.Context, id uuid.UUID, status string) error {
	f.setStatusCalls++
	if p, ok := f.profiles[id]; ok {
		p.WalletStatus = status
	}
	return nil
}

type fakeWalletStore struct {
	storeCalls int
	storeErr   error

	wallets map[uuid.UUID]*models.Wallet
}

func newFakeWalletStore() *fakeWalletStore {
	return &fakeWalletStore{wallets: make(map[uuid.UUID]*models.Wallet)}
}

func (f *fakeWalletStore) Store(_ context.Context, w *models.Wallet) error {
	f.storeCalls++
	if f.storeErr != nil {
		return f.storeErr
	}
	w.ID = uuid.New()
	w.CreatedAt = time.Now()
	cw := *w
	f.wallets[w.ProfileID] = &cw
	return nil
}

func (f *fakeWalletStore) GetByProfileID(_ context.Context, profileID uuid.UUID) (*models.Wallet, error) {
	w, ok := f.wallets[profileID]
	if !ok {
		return nil, errNoRows
	}
	cw := *w
	return &cw, nil
}

type fakePracticeStore struct {
	createCalls int
	createErr   error

	practices map[uuid.UUID]*models.Practice
}

func newFakePracticeStore() *fakePracticeStore {
	return &fakePracticeStore{practices: make(map[uuid.UUID]*models.Practice)}
}

func (f *fakePracticeStore) Create(_ context.Context, p *models.Practice) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	cp := *p
	f.practices[p.ID] = &cp
	return nil
}

func (f *fakePracticeStore) GetByID(_ context.Context, id uuid.UUID) (*models.Practice, error) {
	p, ok := f.practices[id]
	if !ok {
		return nil, errNoRows
	}
	cp := *p
	return &cp, nil
}

type fakeServiceStore struct {
	createCalls int

	services map[uuid.UUID]*models.Service
}

func newFakeServiceStore() *fakeServiceStore {
	return &fakeServiceStore{services: make(map[uuid.UUID]*models.Service)}
}

func (f *fakeServiceStore) Create(_ context.Context, s *models.Service) error {
	f.createCalls++
	s.ID = uuid.New()
	s.CreatedAt = time.Now()
	cs := *s
	f.services[s.ID] = &cs
	return nil
}

func (f *fakeServiceStore) GetByID(_ context.Context, id uuid.UUID) (*models.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, errNoRows
	}
	cs := *s
	return &cs, nil
}

type fakePurchaseStore struct {
	createCalls int
	createErr   error

	purchases []models.Purchase
}

func (f *fakePurchaseStore) Create(_ context.Context, p *models.Purchase) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	f.purchases = append(f.purchases, *p)
	return nil
}

type fakeAuditStore struct {
	entries []models.AuditLog
}

func (f *fakeAuditStore) Log(_ context.Context, entry models.AuditLog) error {
	f.entries = append(f.entries, entry)
	return nil
}

type publishedEvent struct {
	stream string
	event  events.Event
}

type fakePublisher struct {
	published []publishedEvent
}

func (f *fakePublisher) Publish(_ context.Context, stream string, event events.Event) error {
	f.published = append(f.published, publishedEvent{stream: stream, event: event})
	return nil
}

type fakeGateway struct {
	createWalletCalls int
	lastWalletReq     walletdash.CreateWalletRequest
	walletResp        *walletdash.CreateWalletResponse
	walletErr         error

	createPracticeCalls int
	practiceResp        *walletdash.CreatePracticeResponse
	practiceErr         error

	createServiceCalls int
	serviceResp        *walletdash.CreateServiceResponse
	serviceErr         error

	purchaseCalls   int
	lastPurchaseReq walletdash.PurchaseServiceRequest
	purchaseResp    *walletdash.PurchaseServiceResponse
	purchaseErr     error

	claimStatusCalls int
	claimResp        *walletdash.ClaimStatusResponse
	claimErr         error
}

func (f *fakeGateway) CreateWallet(_ context.Context, req walletdash.CreateWalletRequest) (*walletdash.CreateWalletResponse, error) {
	f.createWalletCalls++
	f.lastWalletReq = req
	if f.walletErr != nil {
		return nil, f.walletErr
	}
	if f.walletResp != nil {
		return f.walletResp, nil
	}
	return &walletdash.CreateWalletResponse{
		WalletAddress:          "0x" + req.UserID[:8],
		ClaimToken:             "claim-" + req.UserID[:8],
		FundingAmountSTRK:      strconv.Itoa(req.FundingAmountSTRK),
		FundingTransactionHash: "0xfund",
		ReadyForTransactions:   true,
		TransactionHash:        "0xtx",
	}, nil
}

func (f *fakeGateway) CreatePractice(_ context.Context, req walletdash.CreatePracticeRequest) (*walletdash.CreatePracticeResponse, error) {
	f.createPracticeCalls++
	if f.practiceErr != nil {
		return nil, f.practiceErr
	}
	if f.practiceResp != nil {
		return f.practiceResp, nil
	}
	return &walletdash.CreatePracticeResponse{ID: "bp-1", ContractAddress: "0xpractice", TransactionHash: "0xtx", Active: true}, nil
}

func (f *fakeGateway) CreateService(_ context.Context, req walletdash.CreateServiceRequest) (*walletdash.CreateServiceResponse, error) {
	f.createServiceCalls++
	if f.serviceErr != nil {
		return nil, f.serviceErr
	}
	if f.serviceResp != nil {
		return f.serviceResp, nil
	}
	return &walletdash.CreateServiceResponse{ID: "bs-1", PriceUSDCents: 10000, ContractAddress: "0xservice", TransactionHash: "0xtx", Active: true}, nil
}

func (f *fakeGateway) PurchaseService(_ context.Context, req walletdash.PurchaseServiceRequest) (*walletdash.PurchaseServiceResponse, error) {
	f.purchaseCalls++
	f.lastPurchaseReq = req
	if f.purchaseErr != nil {
		return nil, f.purchaseErr
	}
	if f.purchaseResp != nil {
		return f.purchaseResp, nil
	}
	return &walletdash.PurchaseServiceResponse{
		ID:         "bpur-1",
		AmountUSD:  100,
		AmountSTRK: 200,
		PaymentSplit: walletdash.PaymentSplit{
			Medic: 160, Treasury: 20, Liquidity: 10, Rewards: 10,
		},
		TransactionHash: "0xpay",
		Completed:       true,
	}, nil
}

func (f *fakeGateway) ClaimStatus(_ context.Context, claimToken string) (*walletdash.ClaimStatusResponse, error) {
	f.claimStatusCalls++
	if f.claimErr != nil {
		return nil, f.claimErr
	}
	if f.claimResp != nil {
		return f.claimResp, nil
	}
	return &walletdash.ClaimStatusResponse{ClaimToken: claimToken, Claimed: false}, nil
}
