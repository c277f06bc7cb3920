package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signHS256(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestVerifyValidToken(t *testing.T) {
	v := NewJWTVerifier(testSecret)
	tok := signHS256(t, testSecret, jwt.MapClaims{
		"sub": "uid-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := v.Verify(context.Background(), tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.ExternalID != "uid-123" {
		t.Errorf("ExternalID = %q", claims.ExternalID)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	v := NewJWTVerifier(testSecret)
	tok := signHS256(t, "other-secret", jwt.MapClaims{"sub": "uid-123"})

	if _, err := v.Verify(context.Background(), tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	v := NewJWTVerifier(testSecret)
	tok := signHS256(t, testSecret, jwt.MapClaims{
		"sub": "uid-123",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	if _, err := v.Verify(context.Background(), tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyMissingSubject(t *testing.T) {
	v := NewJWTVerifier(testSecret)
	tok := signHS256(t, testSecret, jwt.MapClaims{"aud": "booking-api"})

	if _, err := v.Verify(context.Background(), tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	v := NewJWTVerifier(testSecret)
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "uid-123"})
	tok, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := v.Verify(context.Background(), tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	v := NewJWTVerifier(testSecret)
	if _, err := v.Verify(context.Background(), "not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
