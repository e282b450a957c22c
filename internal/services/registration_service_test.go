package services

import (
	"context"
	"errors"
	"testing"

	"github.com/meditrip/backend/internal/events"
	"github.com/meditrip/backend/internal/models"
	"github.com/meditrip/backend/internal/walletdash"
	"go.uber.org/zap"
)

func newRegistrationFixture() (*RegistrationService, *fakeProfileStore, *fakeWalletStore, *fakeGateway, *fakeAuditStore, *fakePublisher) {
	profiles := newFakeProfileStore()
	wallets := newFakeWalletStore()
	gateway := &fakeGateway{}
	audit := &fakeAuditStore{}
	publisher := &fakePublisher{}
	svc := NewRegistrationService(profiles, wallets, gateway, audit, publisher, zap.NewNop())
	return svc, profiles, wallets, gateway, audit, publisher
}

func patientForm() RegistrationForm {
	return RegistrationForm{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana@example.com",
		Country:   "MEX",
		UserType:  models.UserTypePatient,
	}
}

func doctorForm() RegistrationForm {
	return RegistrationForm{
		FirstName: "Mehmet",
		LastName:  "Aydin",
		Email:     "mehmet@example.com",
		Country:   "TUR",
		UserType:  models.UserTypeDoctor,
		Specialty: "dentistry",
		City:      "Istanbul",
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegistrationForm)
		field  string
		doctor bool
	}{
		{"missing first name", func(f *RegistrationForm) { f.FirstName = "" }, "first_name", false},
		{"blank last name", func(f *RegistrationForm) { f.LastName = "   " }, "last_name", false},
		{"missing email", func(f *RegistrationForm) { f.Email = "" }, "email", false},
		{"missing country", func(f *RegistrationForm) { f.Country = "" }, "country", false},
		{"missing user type", func(f *RegistrationForm) { f.UserType = "" }, "user_type", false},
		{"unknown user type", func(f *RegistrationForm) { f.UserType = "admin" }, "user_type", false},
		{"doctor missing specialty", func(f *RegistrationForm) { f.Specialty = "" }, "specialty", true},
		{"doctor missing city", func(f *RegistrationForm) { f.City = "" }, "city", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, profiles, wallets, gateway, _, _ := newRegistrationFixture()

			form := patientForm()
			if tt.doctor {
				form = doctorForm()
			}
			tt.mutate(&form)

			_, err := svc.Register(context.Background(), form)

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("field = %q, want %q", verr.Field, tt.field)
			}
			if profiles.createCalls != 0 {
				t.Errorf("profile created despite invalid form")
			}
			if gateway.createWalletCalls != 0 {
				t.Errorf("wallet requested despite invalid form")
			}
			if wallets.storeCalls != 0 {
				t.Errorf("wallet stored despite invalid form")
			}
		})
	}
}

func TestRegisterPatient(t *testing.T) {
	svc, profiles, wallets, gateway, audit, publisher := newRegistrationFixture()

	result, err := svc.Register(context.Background(), patientForm())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if gateway.lastWalletReq.UserType != models.HolderIndividual {
		t.Errorf("wallet user_type = %q, want %q", gateway.lastWalletReq.UserType, models.HolderIndividual)
	}
	if gateway.lastWalletReq.FundingAmountSTRK != 5 {
		t.Errorf("funding = %d, want 5", gateway.lastWalletReq.FundingAmountSTRK)
	}
	if gateway.lastWalletReq.UserID != result.Profile.ID.String() {
		t.Errorf("wallet user_id = %q, want profile id %s", gateway.lastWalletReq.UserID, result.Profile.ID)
	}

	if result.Profile.UserType != models.UserTypePatient {
		t.Errorf("profile user_type = %q", result.Profile.UserType)
	}
	if result.Profile.WalletStatus != models.WalletStatusReady {
		t.Errorf("wallet_status = %q, want ready", result.Profile.WalletStatus)
	}
	if result.Wallet.WalletAddress == "" {
		t.Error("empty wallet address")
	}
	if result.Wallet.FundingAmountSTRK != "5" {
		t.Errorf("stored funding = %q, want \"5\"", result.Wallet.FundingAmountSTRK)
	}

	// Stored wallet mirrors what the gateway returned.
	stored, err := wallets.GetByProfileID(context.Background(), result.Profile.ID)
	if err != nil {
		t.Fatalf("GetByProfileID: %v", err)
	}
	if stored.WalletAddress != result.Wallet.WalletAddress || stored.ClaimToken != result.Wallet.ClaimToken {
		t.Errorf("stored wallet diverges from result: %+v vs %+v", stored, result.Wallet)
	}

	if profiles.createCalls != 1 {
		t.Errorf("createCalls = %d, want 1", profiles.createCalls)
	}
	if len(profiles.doctors) != 0 {
		t.Errorf("doctor profile created for patient")
	}
	if len(audit.entries) != 2 {
		t.Fatalf("audit entries = %d, want 2", len(audit.entries))
	}
	if audit.entries[0].Action != "profile_registered" || audit.entries[1].Action != "wallet_created" {
		t.Errorf("audit actions = %q, %q", audit.entries[0].Action, audit.entries[1].Action)
	}
	if len(publisher.published) != 1 || publisher.published[0].event.Type != events.EventWalletReady {
		t.Errorf("expected one wallet-ready event, got %+v", publisher.published)
	}
}

func TestRegisterDoctor(t *testing.T) {
	svc, profiles, _, gateway, _, _ := newRegistrationFixture()

	result, err := svc.Register(context.Background(), doctorForm())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if gateway.lastWalletReq.UserType != models.HolderMedical {
		t.Errorf("wallet user_type = %q, want %q", gateway.lastWalletReq.UserType, models.HolderMedical)
	}
	if gateway.lastWalletReq.FundingAmountSTRK != 2 {
		t.Errorf("funding = %d, want 2", gateway.lastWalletReq.FundingAmountSTRK)
	}

	doctor, ok := profiles.doctors[result.Profile.ID]
	if !ok {
		t.Fatal("doctor profile not stored")
	}
	if doctor.Specialty != "dentistry" || doctor.City != "Istanbul" {
		t.Errorf("doctor profile = %+v", doctor)
	}
	if doctor.VerificationStatus != "pending" {
		t.Errorf("verification_status = %q, want pending", doctor.VerificationStatus)
	}
}

func TestRegisterWalletFailureKeepsProfilePending(t *testing.T) {
	svc, profiles, wallets, gateway, _, publisher := newRegistrationFixture()
	gateway.walletErr = &walletdash.APIError{Code: "funding_failed", Message: "faucet empty"}

	_, err := svc.Register(context.Background(), patientForm())
	if !errors.Is(err, ErrWalletService) {
		t.Fatalf("expected ErrWalletService, got %v", err)
	}

	if profiles.createCalls != 1 {
		t.Errorf("createCalls = %d, want 1", profiles.createCalls)
	}
	if wallets.storeCalls != 0 {
		t.Errorf("wallet persisted despite gateway failure")
	}
	if len(publisher.published) != 0 {
		t.Errorf("event published despite gateway failure")
	}
	for _, p := range profiles.profiles {
		if p.WalletStatus != models.WalletStatusPending {
			t.Errorf("wallet_status = %q, want pending", p.WalletStatus)
		}
	}
}

func TestRegisterProfileCreateFailure(t *testing.T) {
	svc, profiles, _, gateway, _, _ := newRegistrationFixture()
	profiles.createErr = errors.New("duplicate key")

	_, err := svc.Register(context.Background(), patientForm())
	if !errors.Is(err, ErrProfileCreation) {
		t.Fatalf("expected ErrProfileCreation, got %v", err)
	}
	if gateway.createWalletCalls != 0 {
		t.Errorf("wallet requested despite profile failure")
	}
}

func TestRetryWalletCreation(t *testing.T) {
	svc, profiles, wallets, gateway, _, _ := newRegistrationFixture()
	gateway.walletErr = &walletdash.APIError{Code: "network_error", Message: "timeout"}

	_, err := svc.Register(context.Background(), patientForm())
	if !errors.Is(err, ErrWalletService) {
		t.Fatalf("expected ErrWalletService, got %v", err)
	}

	for _, p := range profiles.profiles {
		// Gateway recovers; the retry must provision and mark ready.
		gateway.walletErr = nil
		if err := svc.RetryWalletCreation(context.Background(), p.ID); err != nil {
			t.Fatalf("RetryWalletCreation: %v", err)
		}
		if wallets.storeCalls != 1 {
			t.Errorf("storeCalls = %d, want 1", wallets.storeCalls)
		}
		refreshed, _ := profiles.GetByID(context.Background(), p.ID)
		if refreshed.WalletStatus != models.WalletStatusReady {
			t.Errorf("wallet_status = %q, want ready", refreshed.WalletStatus)
		}

		// A second retry on a ready profile is a no-op.
		calls := gateway.createWalletCalls
		if err := svc.RetryWalletCreation(context.Background(), p.ID); err != nil {
			t.Fatalf("RetryWalletCreation on ready profile: %v", err)
		}
		if gateway.createWalletCalls != calls {
			t.Errorf("retry on ready profile hit the gateway")
		}
	}
}
