package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func mustToken(t *testing.T, secret []byte, role string) string {
	t.Helper()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddlewareNoToken(t *testing.T) {
	mw := NewMiddleware([]byte("test-secret"))
	handler := mw.Wrap(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/telemetry/scan", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestMiddlewareViewerForbiddenPost(t *testing.T) {
	secret := []byte("test-secret")
	mw := NewMiddleware(secret)
	handler := mw.Wrap(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/telemetry/scan", nil)
	req.Header.Set("Authorization", "Bearer "+mustToken(t, secret, RoleViewer))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}
}

func TestMiddlewareOperatorAllowedPost(t *testing.T) {
	secret := []byte("test-secret")
	mw := NewMiddleware(secret)
	handler := mw.Wrap(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/telemetry/scan", nil)
	req.Header.Set("Authorization", "Bearer "+mustToken(t, secret, RoleOperator))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestMiddlewareWrongSecret(t *testing.T) {
	mw := NewMiddleware([]byte("test-secret"))
	handler := mw.Wrap(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	req.Header.Set("Authorization", "Bearer "+mustToken(t, []byte("other-secret"), RoleViewer))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestParseJWTInvalidRole(t *testing.T) {
	secret := []byte("test-secret")
	token := mustToken(t, secret, "root")
	if _, err := ParseJWT(token, secret); err == nil {
		t.Fatalf("expected invalid role to be rejected")
	}
}
