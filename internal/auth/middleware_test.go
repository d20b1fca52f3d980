package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/linkhoard/linkhoard/internal/auth"
)

func newGuardedEcho(t *testing.T, tokens *auth.TokenManager) http.Handler {
	t.Helper()
	guard := auth.NewGuard(nil, tokens)
	return guard.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := auth.IdentityFromContext(r.Context())
		if !ok {
			t.Fatalf("identity missing from context behind the guard")
		}
		w.Header().Set("X-User-Email", identity.Email)
		w.WriteHeader(http.StatusOK)
	}))
}

func TestGuardRejectsMissingHeader(t *testing.T) {
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Minute)
	handler := newGuardedEcho(t, tokens)

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/users/me", nil))

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.Code)
	}
}

func TestGuardRejectsMalformedHeader(t *testing.T) {
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Minute)
	handler := newGuardedEcho(t, tokens)

	for _, header := range []string{"Basic abc", "Bearer", "token-without-scheme"} {
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		req.Header.Set("Authorization", header)
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		if res.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, res.Code)
		}
	}
}

func TestGuardRejectsExpiredToken(t *testing.T) {
	expired := auth.NewTokenManager([]byte("test-secret"), -time.Minute)
	token, err := expired.Issue(1, "a@test.local")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	handler := newGuardedEcho(t, auth.NewTokenManager([]byte("test-secret"), time.Minute))
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", res.Code)
	}
}

func TestGuardAttachesIdentity(t *testing.T) {
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Minute)
	token, err := tokens.Issue(7, "user@test.local")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	handler := newGuardedEcho(t, tokens)
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if got := res.Header().Get("X-User-Email"); got != "user@test.local" {
		t.Fatalf("expected identity email to reach the handler, got %q", got)
	}
}
