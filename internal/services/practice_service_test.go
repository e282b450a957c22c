package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/meditrip/backend/internal/models"
	"go.uber.org/zap"
)

type practiceFixture struct {
	svc       *PracticeService
	practices *fakePracticeStore
	services  *fakeServiceStore
	profiles  *fakeProfileStore
	gateway   *fakeGateway

	doctorID  uuid.UUID
	patientID uuid.UUID
}

func newPracticeFixture(t *testing.T) *practiceFixture {
	t.Helper()

	practices := newFakePracticeStore()
	services := newFakeServiceStore()
	profiles := newFakeProfileStore()
	wallets := newFakeWalletStore()
	gateway := &fakeGateway{}

	doctor := &models.Profile{
		ID:                 uuid.New(),
		FirstName:          "Mehmet",
		LastName:           "Aydin",
		Email:              "mehmet@example.com",
		UserType:           models.UserTypeDoctor,
		Country:            "TUR",
		BlockchainUserType: models.HolderMedical,
		WalletStatus:       models.WalletStatusReady,
	}
	patient := &models.Profile{
		ID:                 uuid.New(),
		FirstName:          "Ana",
		LastName:           "Silva",
		Email:              "ana@example.com",
		UserType:           models.UserTypePatient,
		Country:            "MEX",
		BlockchainUserType: models.HolderIndividual,
		WalletStatus:       models.WalletStatusReady,
	}
	for _, p := range []*models.Profile{doctor, patient} {
		if err := profiles.Create(context.Background(), p, nil); err != nil {
			t.Fatalf("seed profile: %v", err)
		}
	}

	return &practiceFixture{
		svc:       NewPracticeService(practices, services, profiles, wallets, gateway, &fakeAuditStore{}, zap.NewNop()),
		practices: practices,
		services:  services,
		profiles:  profiles,
		gateway:   gateway,
		doctorID:  doctor.ID,
		patientID: patient.ID,
	}
}

func TestCreatePractice(t *testing.T) {
	fx := newPracticeFixture(t)

	practice, err := fx.svc.CreatePractice(context.Background(), fx.doctorID, CreatePracticeInput{
		Name:      "Aydin Dental",
		Specialty: "dentistry",
		Location:  "Istanbul",
	})
	if err != nil {
		t.Fatalf("CreatePractice: %v", err)
	}

	if practice.DoctorID != fx.doctorID {
		t.Errorf("doctor_id = %s, want %s", practice.DoctorID, fx.doctorID)
	}
	if practice.BackendPracticeID == "" || practice.ContractAddress == "" {
		t.Errorf("backend linkage missing: %+v", practice)
	}
	if fx.practices.createCalls != 1 || fx.gateway.createPracticeCalls != 1 {
		t.Errorf("calls: store=%d gateway=%d", fx.practices.createCalls, fx.gateway.createPracticeCalls)
	}
}

func TestCreatePracticeRejectsPatients(t *testing.T) {
	fx := newPracticeFixture(t)

	_, err := fx.svc.CreatePractice(context.Background(), fx.patientID, CreatePracticeInput{
		Name:      "Nope Clinic",
		Specialty: "dentistry",
		Location:  "Cancun",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if fx.gateway.createPracticeCalls != 0 {
		t.Errorf("gateway hit for forbidden caller")
	}
}

func TestCreatePracticeValidation(t *testing.T) {
	fx := newPracticeFixture(t)

	_, err := fx.svc.CreatePractice(context.Background(), fx.doctorID, CreatePracticeInput{
		Specialty: "dentistry",
		Location:  "Istanbul",
	})

	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "name" {
		t.Fatalf("expected ValidationError on name, got %v", err)
	}
}

func TestCreateService(t *testing.T) {
	fx := newPracticeFixture(t)

	practice, err := fx.svc.CreatePractice(context.Background(), fx.doctorID, CreatePracticeInput{
		Name:      "Aydin Dental",
		Specialty: "dentistry",
		Location:  "Istanbul",
	})
	if err != nil {
		t.Fatalf("CreatePractice: %v", err)
	}

	service, err := fx.svc.CreateService(context.Background(), fx.doctorID, CreateServiceInput{
		PracticeID:  practice.ID,
		Name:        "Dental implant",
		Description: "Single titanium implant",
		PriceUSD:    "1200.00",
	})
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}

	if service.PracticeID != practice.ID || service.DoctorID != fx.doctorID {
		t.Errorf("ownership: %+v", service)
	}
	if service.PriceUSD != "1200.00" {
		t.Errorf("price = %q", service.PriceUSD)
	}
	if service.BackendServiceID == "" {
		t.Error("backend service id missing")
	}
}

func TestCreateServiceForeignPractice(t *testing.T) {
	fx := newPracticeFixture(t)

	practice, err := fx.svc.CreatePractice(context.Background(), fx.doctorID, CreatePracticeInput{
		Name:      "Aydin Dental",
		Specialty: "dentistry",
		Location:  "Istanbul",
	})
	if err != nil {
		t.Fatalf("CreatePractice: %v", err)
	}

	_, err = fx.svc.CreateService(context.Background(), uuid.New(), CreateServiceInput{
		PracticeID: practice.ID,
		Name:       "Dental implant",
		PriceUSD:   "1200.00",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if fx.services.createCalls != 0 {
		t.Errorf("service persisted for foreign practice")
	}
}
