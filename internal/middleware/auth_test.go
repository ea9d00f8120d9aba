package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medicare-api/internal/auth"
	"medicare-api/internal/model"
)

const testSecret = "test-secret"

func protected(t *testing.T, roles ...model.Role) http.Handler {
	t.Helper()
	var inner http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ClaimsFromContext(r.Context())
		if claims == nil {
			t.Error("claims missing from context")
		}
		w.WriteHeader(http.StatusOK)
	})
	if len(roles) > 0 {
		inner = RequireRole(roles...)(inner)
	}
	return Authenticate(testSecret)(inner)
}

func do(h http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticateMissingToken(t *testing.T) {
	rec := do(protected(t), "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticateBadToken(t *testing.T) {
	rec := do(protected(t), "garbage")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	tok, _ := auth.MakeToken("uid", model.RolePatient, testSecret, -time.Minute)
	rec := do(protected(t), tok)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticateValid(t *testing.T) {
	tok, _ := auth.MakeToken("uid", model.RolePatient, testSecret, time.Hour)
	rec := do(protected(t), tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRoleForbidden(t *testing.T) {
	tok, _ := auth.MakeToken("uid", model.RolePatient, testSecret, time.Hour)
	rec := do(protected(t, model.RoleAdmin), tok)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRoleAllowed(t *testing.T) {
	tok, _ := auth.MakeToken("uid", model.RoleDoctor, testSecret, time.Hour)
	rec := do(protected(t, model.RoleAdmin, model.RoleDoctor), tok)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRoleNeverReadFromBody(t *testing.T) {
	// a forged role in the payload must not matter; only the token counts
	tok, _ := auth.MakeToken("uid", model.RolePatient, testSecret, time.Hour)
	h := protected(t, model.RoleAdmin)
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	req.Header.Set("X-Role", "ADMIN")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
