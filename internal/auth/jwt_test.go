package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestJWTRoundTrip(t *testing.T) {
	profileID := uuid.New()

	token, err := GenerateJWT("test-secret", profileID, "doctor", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT("test-secret", token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.ProfileID != profileID {
		t.Errorf("profile_id = %s, want %s", claims.ProfileID, profileID)
	}
	if claims.UserType != "doctor" {
		t.Errorf("user_type = %q, want doctor", claims.UserType)
	}
	if claims.Issuer != "meditrip" {
		t.Errorf("issuer = %q", claims.Issuer)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("secret-a", uuid.New(), "patient", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT("secret-b", token); err == nil {
		t.Fatal("token accepted with wrong secret")
	}
}

func TestJWTExpired(t *testing.T) {
	token, err := GenerateJWT("test-secret", uuid.New(), "patient", time.Millisecond)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, err := ParseJWT("test-secret", token); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestJWTGarbage(t *testing.T) {
	if _, err := ParseJWT("test-secret", "not.a.token"); err == nil {
		t.Fatal("garbage token accepted")
	}
}
