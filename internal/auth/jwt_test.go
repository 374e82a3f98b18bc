package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.Generate("42", "owner@example.com")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.OwnerID() != "42" {
		t.Errorf("owner id: expected '42', got '%s'", claims.OwnerID())
	}
	if claims.Email != "owner@example.com" {
		t.Errorf("email: expected 'owner@example.com', got '%s'", claims.Email)
	}
}

func TestJWTManagerRejects(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	sign := func(method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
		t.Helper()
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		if err != nil {
			t.Fatalf("failed to sign: %v", err)
		}
		return s
	}
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{
			name: "wrong secret",
			token: sign(jwt.SigningMethodHS256, []byte("other-secret"), &Claims{
				RegisteredClaims: jwt.RegisteredClaims{Subject: "42", ExpiresAt: future},
			}),
		},
		{
			name: "expired",
			token: sign(jwt.SigningMethodHS256, []byte("test-secret"), &Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "42",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				},
			}),
		},
		{
			name: "no expiry",
			token: sign(jwt.SigningMethodHS256, []byte("test-secret"), &Claims{
				RegisteredClaims: jwt.RegisteredClaims{Subject: "42"},
			}),
		},
		{
			name: "other HMAC algorithm",
			token: sign(jwt.SigningMethodHS512, []byte("test-secret"), &Claims{
				RegisteredClaims: jwt.RegisteredClaims{Subject: "42", ExpiresAt: future},
			}),
		},
		{
			name: "missing subject",
			token: sign(jwt.SigningMethodHS256, []byte("test-secret"), &Claims{
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future},
			}),
		},
		{
			name:  "garbage",
			token: "not-a-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := m.Validate(tt.token)
			if err == nil {
				t.Fatalf("expected error, got claims %+v", claims)
			}
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}
