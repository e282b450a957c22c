package models

import "testing"

func TestHolderTypeForUser(t *testing.T) {
	tests := []struct {
		userType string
		want     string
	}{
		{UserTypePatient, HolderIndividual},
		{UserTypeDoctor, HolderMedical},
		{"", HolderIndividual},
		{"something_else", HolderIndividual},
	}
	for _, tt := range tests {
		if got := HolderTypeForUser(tt.userType); got != tt.want {
			t.Errorf("HolderTypeForUser(%q) = %q, want %q", tt.userType, got, tt.want)
		}
	}
}

func TestFundingAmountSTRK(t *testing.T) {
	tests := []struct {
		holder string
		want   int
	}{
		{HolderIndividual, 5},
		{HolderMedical, 2},
		{HolderFinance, 3},
		{HolderGaming, 2},
		{HolderSocial, 2},
		{HolderEnterprise, 10},
		{"Unknown", 2},
		{"", 2},
	}
	for _, tt := range tests {
		if got := FundingAmountSTRK(tt.holder); got != tt.want {
			t.Errorf("FundingAmountSTRK(%q) = %d, want %d", tt.holder, got, tt.want)
		}
	}
}

func TestIsValidUserType(t *testing.T) {
	for _, valid := range []string{UserTypePatient, UserTypeDoctor} {
		if !IsValidUserType(valid) {
			t.Errorf("IsValidUserType(%q) = false", valid)
		}
	}
	for _, invalid := range []string{"", "admin", "Patient", "DOCTOR"} {
		if IsValidUserType(invalid) {
			t.Errorf("IsValidUserType(%q) = true", invalid)
		}
	}
}
