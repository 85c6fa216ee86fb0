package security

import (
	"testing"
	"time"

	"learning-service/internal/config"
)

func init() {
	config.AppConfig = &config.Config{
		JWTSecret: []byte("test-secret"),
		JWTExp:    time.Hour,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-123", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	userID, err := GetUserIDFromClaims(claims)
	if err != nil || userID != "user-123" {
		t.Errorf("expected user-123, got %q err=%v", userID, err)
	}
	role, err := GetUserRoleFromClaims(claims)
	if err != nil || role != "admin" {
		t.Errorf("expected admin, got %q err=%v", role, err)
	}
}

func TestParseRejectsTamperedToken(t *testing.T) {
	token, err := GenerateToken("user-123", "user")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseToken(token + "x"); err == nil {
		t.Error("expected a tampered token to be rejected")
	}
	if _, err := ParseToken("not-a-token"); err == nil {
		t.Error("expected garbage to be rejected")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPasswordHash("hunter22", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("hunter23", hash) {
		t.Error("wrong password accepted")
	}
}
