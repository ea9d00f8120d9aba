package auth

import (
	"testing"
	"time"

	"medicare-api/internal/model"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPassword(hash, "secret1") {
		t.Fatal("expected password to match")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("expected password mismatch")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tok, err := MakeToken("uid-1", model.RolePatient, "secret", 7*24*time.Hour)
	if err != nil {
		t.Fatalf("make token: %v", err)
	}

	claims, err := ParseToken(tok, "secret")
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != "uid-1" {
		t.Errorf("uid mismatch: %s", claims.UserID)
	}
	if claims.Role != model.RolePatient {
		t.Errorf("role mismatch: %s", claims.Role)
	}

	// verify expiry is ~7 days out
	diff := time.Until(claims.ExpiresAt.Time)
	if diff < 7*24*time.Hour-time.Minute || diff > 7*24*time.Hour+time.Minute {
		t.Errorf("expected ~7d expiry, got %v", diff)
	}
}

func TestTokenRejection(t *testing.T) {
	tok, _ := MakeToken("uid", model.RoleDoctor, "secret", time.Hour)

	if _, err := ParseToken(tok, "wrong-secret"); err == nil {
		t.Fatal("expected error for wrong secret")
	}
	if _, err := ParseToken("not.a.token", "secret"); err == nil {
		t.Fatal("expected error for garbage token")
	}
}

func TestExpiredToken(t *testing.T) {
	tok, _ := MakeToken("uid", model.RolePatient, "secret", -time.Minute)
	if _, err := ParseToken(tok, "secret"); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestBogusRoleClaim(t *testing.T) {
	tok, _ := MakeToken("uid", model.Role("SUPERUSER"), "secret", time.Hour)
	if _, err := ParseToken(tok, "secret"); err == nil {
		t.Fatal("expected error for unknown role")
	}
}
