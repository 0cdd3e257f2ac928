package auth

import (
	"errors"
	"testing"
	"time"
)

func testJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "rollcall.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := testJWTService(time.Hour)

	token, expiresIn, err := svc.GenerateToken("S2021001", "Ada Lovelace", "student")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims: %v", err)
	}
	if claims.UserID != "S2021001" || claims.Name != "Ada Lovelace" || claims.Role != "student" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.Issuer != "rollcall.test" {
		t.Errorf("issuer = %q", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("jti missing")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testJWTService(-time.Minute)

	token, _, err := svc.GenerateToken("S2021001", "Ada Lovelace", "student")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := svc.ValidateAndExtractClaims(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("ValidateAndExtractClaims = %v, want ErrExpiredToken", err)
	}
}

func TestValidateTamperedToken(t *testing.T) {
	svc := testJWTService(time.Hour)
	other := NewJWTService(JWTConfig{SecretKey: "other-secret", AccessTokenExp: time.Hour, TokenIssuer: "rollcall.test"})

	token, _, err := other.GenerateToken("S2021001", "Ada Lovelace", "student")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := svc.ValidateAndExtractClaims(token); err == nil {
		t.Fatal("token signed with different secret validated")
	}

	if _, err := svc.ValidateAndExtractClaims(""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("empty token = %v, want ErrInvalidToken", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil || token != "abc.def.ghi" {
		t.Errorf("ExtractBearerToken = %q, %v", token, err)
	}

	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("empty header = %v, want ErrInvalidFormat", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cretpass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cretpass" {
		t.Fatal("hash equals plain text")
	}
	if !CheckPassword(hash, "s3cretpass") {
		t.Error("CheckPassword rejected correct password")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("CheckPassword accepted wrong password")
	}
}
