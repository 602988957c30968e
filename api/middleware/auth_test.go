package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/cinebase/cinebase-backend/api/responses"
	pkgAuth "github.com/cinebase/cinebase-backend/pkg/auth"
	"github.com/cinebase/cinebase-backend/pkg/config"
	"github.com/cinebase/cinebase-backend/pkg/db/models"
)

type stubUserLoader struct {
	ids map[int64]bool
}

func (s stubUserLoader) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if s.ids[id] {
		return &models.User{ID: id}, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func authTestConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "secret", Algorithm: "HS256", ExpirationMinutes: 30}
}

func runAuth(t *testing.T, header string, loader stubUserLoader) (*httptest.ResponseRecorder, int64) {
	t.Helper()
	var seenUserID int64
	handler := Auth(authTestConfig(), loader, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest("GET", "/usuarios/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, seenUserID
}

func TestAuthAcceptsValidBearerToken(t *testing.T) {
	token, err := pkgAuth.MintAccessToken(authTestConfig(), time.Now(), 42)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	rec, seen := runAuth(t, "Bearer "+token, stubUserLoader{ids: map[int64]bool{42: true}})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected pass-through, got %d: %s", rec.Code, rec.Body.String())
	}
	if seen != 42 {
		t.Fatalf("expected user 42 in context, got %d", seen)
	}
}

func TestAuthFailureModesAreIndistinguishable(t *testing.T) {
	validToken, err := pkgAuth.MintAccessToken(authTestConfig(), time.Now(), 99)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	headers := []string{
		"",                    // missing header
		"Bearer ",             // empty token
		"Bearer not-a-jwt",    // malformed token
		"Bearer " + validToken, // valid token, user no longer exists
	}

	for _, header := range headers {
		rec, _ := runAuth(t, header, stubUserLoader{ids: map[int64]bool{42: true}})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 for header %q, got %d", header, rec.Code)
		}
		if got := rec.Header().Get("WWW-Authenticate"); got != "Bearer" {
			t.Fatalf("expected bearer challenge for header %q, got %q", header, got)
		}
		var envelope responses.ErrorEnvelope
		if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if envelope.Error.Message != "Could not validate credentials" {
			t.Fatalf("all failures must share one message, got %q", envelope.Error.Message)
		}
	}
}
