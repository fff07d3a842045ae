package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

type memTokenStore struct {
	mu   sync.Mutex
	rows map[string]time.Time
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{rows: make(map[string]time.Time)}
}

func (s *memTokenStore) Insert(_ context.Context, jti string, _ int64, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[jti] = expiresAt
	return nil
}

func (s *memTokenStore) IsLive(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.rows[jti]
	return ok && exp.After(time.Now()), nil
}

func (s *memTokenStore) Revoke(_ context.Context, jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rows, jti)
	return nil
}

func (s *memTokenStore) PurgeExpired(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for jti, exp := range s.rows {
		if !exp.After(time.Now()) {
			delete(s.rows, jti)
			n++
		}
	}
	return n, nil
}

func newTestIssuer() (*Issuer, *memTokenStore) {
	store := newMemTokenStore()
	return NewIssuer([]byte("clave-de-prueba"), time.Hour, store), store
}

func TestIssueAndVerify(t *testing.T) {
	issuer, _ := newTestIssuer()
	ctx := context.Background()

	token, err := issuer.Issue(ctx, 7, RoleAdmin)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := issuer.Verify(ctx, token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "7" {
		t.Errorf("subject: got %q, want 7", claims.Subject)
	}
	if claims.Role != RoleAdmin {
		t.Errorf("role: got %q, want admin", claims.Role)
	}
	if claims.ID == "" {
		t.Error("expected a jti")
	}
}

func TestVerify_RevokedToken(t *testing.T) {
	issuer, _ := newTestIssuer()
	ctx := context.Background()

	token, err := issuer.Issue(ctx, 7, RoleUser)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	claims, err := issuer.Verify(ctx, token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if err := issuer.Revoke(ctx, claims.ID); err != nil {
		t.Fatalf("Revoke: %v", err)
	}
	if _, err := issuer.Verify(ctx, token); err == nil {
		t.Fatal("expected revoked token to be rejected")
	}
}

func TestVerify_RevokeIsPerToken(t *testing.T) {
	issuer, _ := newTestIssuer()
	ctx := context.Background()

	first, _ := issuer.Issue(ctx, 7, RoleUser)
	second, _ := issuer.Issue(ctx, 7, RoleUser)

	claims, err := issuer.Verify(ctx, first)
	if err != nil {
		t.Fatalf("Verify first: %v", err)
	}
	if err := issuer.Revoke(ctx, claims.ID); err != nil {
		t.Fatalf("Revoke: %v", err)
	}

	if _, err := issuer.Verify(ctx, first); err == nil {
		t.Fatal("expected first token to be rejected")
	}
	if _, err := issuer.Verify(ctx, second); err != nil {
		t.Fatalf("expected second token to stay valid: %v", err)
	}
}

func TestVerify_TamperedToken(t *testing.T) {
	issuer, _ := newTestIssuer()
	other := NewIssuer([]byte("otra-clave"), time.Hour, newMemTokenStore())
	ctx := context.Background()

	token, _ := other.Issue(ctx, 7, RoleUser)
	if _, err := issuer.Verify(ctx, token); err == nil {
		t.Fatal("expected token signed with another key to be rejected")
	}
}

func TestMiddleware(t *testing.T) {
	issuer, _ := newTestIssuer()
	ctx := context.Background()
	token, _ := issuer.Issue(ctx, 42, RoleAdmin)

	e := echo.New()
	handler := Middleware(issuer)(func(c echo.Context) error {
		rctx := c.Request().Context()
		if UserIDFromContext(rctx) != 42 {
			t.Errorf("user id: got %d, want 42", UserIDFromContext(rctx))
		}
		if RoleFromContext(rctx) != RoleAdmin {
			t.Errorf("role: got %q", RoleFromContext(rctx))
		}
		if TokenIDFromContext(rctx) == "" {
			t.Error("expected token id on context")
		}
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	if err := handler(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d", rec.Code)
	}
}

func TestMiddleware_Rejections(t *testing.T) {
	issuer, _ := newTestIssuer()
	e := echo.New()
	handler := Middleware(issuer)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer no-es-un-token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			err := handler(e.NewContext(req, rec))
			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %v", err)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	gate := RequireRole(RoleAdmin)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	invoke := func(role string) error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := context.WithValue(req.Context(), UserRoleKey, role)
		req = req.WithContext(ctx)
		rec := httptest.NewRecorder()
		return gate(e.NewContext(req, rec))
	}

	if err := invoke(RoleUser); err == nil {
		t.Fatal("expected user to be rejected at admin gate")
	}
	if err := invoke(RoleAdmin); err != nil {
		t.Fatalf("expected admin to pass: %v", err)
	}
	if err := invoke(RoleSuperAdmin); err != nil {
		t.Fatalf("expected superadmin to pass: %v", err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secreto123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !CheckPassword(hash, "secreto123") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "otro") {
		t.Error("expected wrong password to fail")
	}
}
