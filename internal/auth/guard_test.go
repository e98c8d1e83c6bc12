package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func signToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func request(headers map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/multimodal/query", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func TestGuard_DisabledAdmitsEverything(t *testing.T) {
	guard := NewGuard("", "")

	if guard.Enabled() {
		t.Error("expected guard to be disabled")
	}
	if err := guard.Authorize(request(nil)); err != nil {
		t.Errorf("expected request to pass, got %v", err)
	}
}

func TestGuard_APIKey(t *testing.T) {
	guard := NewGuard("secret-key", "")

	tests := []struct {
		name    string
		headers map[string]string
		wantErr bool
	}{
		{
			name:    "exact key passes",
			headers: map[string]string{"X-API-Key": "secret-key"},
			wantErr: false,
		},
		{
			name:    "wrong key rejected",
			headers: map[string]string{"X-API-Key": "other-key"},
			wantErr: true,
		},
		{
			name:    "no credentials rejected",
			headers: nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := guard.Authorize(request(tt.headers))
			if tt.wantErr && err == nil {
				t.Error("expected rejection, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected pass, got %v", err)
			}
		})
	}
}

func TestGuard_BearerToken(t *testing.T) {
	guard := NewGuard("", testSecret)

	t.Run("valid token passes", func(t *testing.T) {
		token := signToken(t, testSecret, time.Now().Add(time.Hour))
		err := guard.Authorize(request(map[string]string{"Authorization": "Bearer " + token}))
		if err != nil {
			t.Errorf("expected pass, got %v", err)
		}
	})

	t.Run("expired token rejected", func(t *testing.T) {
		token := signToken(t, testSecret, time.Now().Add(-time.Hour))
		err := guard.Authorize(request(map[string]string{"Authorization": "Bearer " + token}))
		if !errors.Is(err, ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		token := signToken(t, "ffffffffffffffffffffffffffffffff", time.Now().Add(time.Hour))
		err := guard.Authorize(request(map[string]string{"Authorization": "Bearer " + token}))
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		err := guard.Authorize(request(map[string]string{"Authorization": "Bearer not.a.jwt"}))
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("missing header rejected", func(t *testing.T) {
		err := guard.Authorize(request(nil))
		if !errors.Is(err, ErrMissingCredentials) {
			t.Errorf("expected ErrMissingCredentials, got %v", err)
		}
	})
}

func TestGuard_CombinedEitherCredentialPasses(t *testing.T) {
	guard := NewGuard("secret-key", testSecret)

	if err := guard.Authorize(request(map[string]string{"X-API-Key": "secret-key"})); err != nil {
		t.Errorf("expected API key to pass, got %v", err)
	}

	token := signToken(t, testSecret, time.Now().Add(time.Hour))
	if err := guard.Authorize(request(map[string]string{"Authorization": "Bearer " + token})); err != nil {
		t.Errorf("expected bearer token to pass, got %v", err)
	}

	if err := guard.Authorize(request(nil)); err == nil {
		t.Error("expected rejection without credentials")
	}
}
